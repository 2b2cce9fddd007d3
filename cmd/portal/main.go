// Command portal is the client. Every invocation restores the persisted
// session, wires the pipeline (session store, authenticator, router with
// guards, mediated http client), runs one subcommand, and exits.
//
// Usage:
//
//	portal login -email <email> -password <secret>
//	portal logout
//	portal whoami
//	portal refresh
//	portal open <path>
//	portal users list | get <id> | delete <id>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/webportal/portal-client/internal/client"
	"github.com/webportal/portal-client/internal/core/ports"
	"github.com/webportal/portal-client/internal/core/service"
	"github.com/webportal/portal-client/internal/core/session"
	"github.com/webportal/portal-client/internal/infrastructure/config"
	dbmongo "github.com/webportal/portal-client/internal/infrastructure/db/mongo"
	dbredis "github.com/webportal/portal-client/internal/infrastructure/db/redis"
	"github.com/webportal/portal-client/internal/infrastructure/registry"
	"github.com/webportal/portal-client/internal/infrastructure/storage"
	"github.com/webportal/portal-client/internal/navigation"
	"github.com/webportal/portal-client/pkg/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "portal:", err)
		os.Exit(1)
	}
}

type app struct {
	cfg    *config.Config
	sess   *session.Store
	router *navigation.Router
	auth   *service.AuthService
	users  *client.UsersClient
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command (login, logout, whoami, refresh, open, users)")
	}

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	a, err := buildApp(ctx, cfg, log)
	if err != nil {
		return err
	}

	a.auth.RestoreFromStorage(ctx)

	switch args[0] {
	case "login":
		return a.login(ctx, args[1:])
	case "logout":
		a.auth.Logout()
		fmt.Println("logged out; at", a.router.Current().String())
		return nil
	case "whoami":
		return a.whoami()
	case "refresh":
		if !a.auth.Refresh(ctx) {
			return fmt.Errorf("session refresh failed")
		}
		fmt.Println("session refreshed")
		return nil
	case "open":
		if len(args) < 2 {
			return fmt.Errorf("usage: portal open <path>")
		}
		a.router.NavigateTo(navigation.NewTarget(args[1]))
		fmt.Println("at", a.router.Current().String())
		return nil
	case "users":
		return a.usersCmd(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func buildApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app, error) {
	records, err := buildRecordStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	creds, err := buildRegistry(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sess := session.NewStore()
	router := navigation.NewRouter(log)
	router.Register(navigation.PathLogin, navigation.GuestGuard(sess))
	router.Register(navigation.PathUnauthorized)
	router.Register(navigation.PathDashboard, navigation.AuthGuard(sess))
	router.Register(navigation.PathUsers, navigation.AuthGuard(sess))
	router.Register(navigation.PathAdmin, navigation.AuthGuard(sess), navigation.AdminGuard(sess))

	auth := service.NewAuthService(sess, creds, records, router, cfg.LoginLatency, log)
	minter := service.NewTokenMinter(cfg.TokenSecret)
	transport := client.NewTransport(nil, sess, minter, auth, router, log)
	users := client.NewUsersClient(cfg.APIBaseURL, client.NewHTTPClient(transport))

	return &app{cfg: cfg, sess: sess, router: router, auth: auth, users: users}, nil
}

func buildRecordStore(ctx context.Context, cfg *config.Config) (ports.RecordStore, error) {
	switch cfg.SessionStore {
	case "file", "":
		path := cfg.SessionFile
		if path == "" {
			var err error
			if path, err = storage.DefaultRecordPath(); err != nil {
				return nil, err
			}
		}
		return storage.NewFileStore(path), nil
	case "redis":
		rdb, err := dbredis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		return dbredis.NewRecordStore(rdb), nil
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}

func buildRegistry(ctx context.Context, cfg *config.Config) (ports.CredentialRegistry, error) {
	static, err := registry.NewStatic(registry.DemoEntries())
	if err != nil {
		return nil, err
	}

	switch cfg.CredentialSource {
	case "static", "":
		return static, nil
	case "mongo":
		_, db, err := dbmongo.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return nil, err
		}
		reg := dbmongo.NewCredentialRegistry(db)
		if err := reg.Seed(ctx, static.Credentials()); err != nil {
			return nil, err
		}
		return reg, nil
	default:
		return nil, fmt.Errorf("unknown credential source %q", cfg.CredentialSource)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account secret")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result := a.auth.Login(ctx, *email, *password)
	fmt.Println(result.Message)
	if !result.Success {
		os.Exit(1)
	}

	// Resume the navigation the login page interrupted, if any.
	target := navigation.NewTarget(navigation.PathDashboard)
	if ret := a.router.Current().Query.Get(navigation.ReturnURLParam); ret != "" {
		target = navigation.NewTarget(ret)
	}
	a.router.NavigateTo(target)
	fmt.Println("at", a.router.Current().String())
	return nil
}

func (a *app) whoami() error {
	actor := a.sess.Actor()
	if actor == nil {
		fmt.Println("not signed in")
		return nil
	}
	fmt.Printf("%s <%s> role=%s admin=%v\n",
		actor.DisplayName, actor.Email, actor.Role, a.sess.IsAdmin())
	return nil
}

func (a *app) usersCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: portal users list | get <id> | delete <id>")
	}

	switch args[0] {
	case "list":
		users, err := a.users.List(ctx)
		if err != nil {
			return describe(err)
		}
		for _, u := range users {
			fmt.Printf("%3d  %-20s %s\n", u.ID, u.Name, u.Email)
		}
		return nil
	case "get", "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: portal users %s <id>", args[0])
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[1])
		}
		if args[0] == "get" {
			user, err := a.users.Get(ctx, id)
			if err != nil {
				return describe(err)
			}
			fmt.Printf("%d  %s <%s> %s (%s)\n", user.ID, user.Name, user.Email, user.Website, user.Company.Name)
			return nil
		}
		if err := a.users.Delete(ctx, id); err != nil {
			return describe(err)
		}
		fmt.Println("deleted", id)
		return nil
	default:
		return fmt.Errorf("unknown users subcommand %q", args[0])
	}
}

// describe prefers the normalized user-facing message when present.
func describe(err error) error {
	if reqErr := client.FromError(err); reqErr != nil {
		return fmt.Errorf("%s", reqErr.Message)
	}
	return err
}
