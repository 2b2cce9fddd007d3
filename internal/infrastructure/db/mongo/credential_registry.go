package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/webportal/portal-client/internal/core/domain"
)

const credentialCollection = "credentials"

// CredentialRegistry resolves credentials from a MongoDB collection keyed
// by email.
type CredentialRegistry struct {
	coll *mongo.Collection
}

func NewCredentialRegistry(db *mongo.Database) *CredentialRegistry {
	return &CredentialRegistry{coll: db.Collection(credentialCollection)}
}

type credentialDoc struct {
	Email      string `bson:"email"`
	SecretHash string `bson:"secret_hash"`
	ActorID    int    `bson:"actor_id"`
	Name       string `bson:"name"`
	Role       string `bson:"role"`
}

// FindByEmail looks up the credential entry for an email.
func (r *CredentialRegistry) FindByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	var doc credentialDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrActorNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}

	return &domain.Credential{
		SecretHash: doc.SecretHash,
		Actor: domain.Actor{
			ID:          doc.ActorID,
			Email:       doc.Email,
			DisplayName: doc.Name,
			Role:        domain.Role(doc.Role),
		},
	}, nil
}

// Seed inserts credential entries, skipping emails already present. Used
// to load the demo table into a fresh database.
func (r *CredentialRegistry) Seed(ctx context.Context, creds []domain.Credential) error {
	for _, cred := range creds {
		filter := bson.M{"email": cred.Actor.Email}
		n, err := r.coll.CountDocuments(ctx, filter)
		if err != nil {
			return fmt.Errorf("seed credentials: %w", err)
		}
		if n > 0 {
			continue
		}
		doc := credentialDoc{
			Email:      cred.Actor.Email,
			SecretHash: cred.SecretHash,
			ActorID:    cred.Actor.ID,
			Name:       cred.Actor.DisplayName,
			Role:       string(cred.Actor.Role),
		}
		if _, err := r.coll.InsertOne(ctx, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			return fmt.Errorf("seed credentials: %w", err)
		}
	}
	return nil
}
