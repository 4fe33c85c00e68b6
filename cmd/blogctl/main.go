// Command blogctl is a small CLI for an inkwell server: sign up, log in,
// publish and manage your own articles, and read anyone's published ones.
//
// The session token obtained on login is kept in a file under the user's
// home directory so that subsequent invocations stay authenticated until
// logout or expiry.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/avolkov/inkwell/internal/adapter"
	"github.com/avolkov/inkwell/internal/config"
	"github.com/avolkov/inkwell/models"
)

const sessionFileName = ".inkwell_session"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "blogctl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return errors.New("missing command")
	}

	if args[0] == "version" {
		printBuildInfo()
		return nil
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("load client config: %w", err)
	}

	srv := adapter.NewHTTPServerAdapter(*cfg)
	if token, err := loadSessionToken(); err == nil {
		srv.SetToken(token)
	}

	ctx := context.Background()

	switch args[0] {
	case "signup":
		return runSignUp(ctx, srv, args[1:])
	case "login":
		return runLogin(ctx, srv, args[1:])
	case "logout":
		return runLogout(ctx, srv)
	case "publish":
		return runPublish(ctx, srv, args[1:])
	case "edit":
		return runEdit(ctx, srv, args[1:])
	case "remove":
		return runRemove(ctx, srv, args[1:])
	case "list":
		return runListOwn(ctx, srv)
	case "view":
		return runView(ctx, srv, args[1:])
	case "author":
		return runListByAuthor(ctx, srv, args[1:])
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runSignUp(ctx context.Context, srv adapter.ServerAdapter, args []string) error {
	creds, err := parseCredentials("signup", args)
	if err != nil {
		return err
	}

	if err = srv.SignUp(ctx, creds); err != nil {
		return err
	}
	if err = saveSessionToken(srv.Token()); err != nil {
		return err
	}

	fmt.Printf("account %q created, logged in\n", creds.Handle)
	return nil
}

func runLogin(ctx context.Context, srv adapter.ServerAdapter, args []string) error {
	creds, err := parseCredentials("login", args)
	if err != nil {
		return err
	}

	if err = srv.Login(ctx, creds); err != nil {
		return err
	}
	if err = saveSessionToken(srv.Token()); err != nil {
		return err
	}

	fmt.Printf("logged in as %q\n", creds.Handle)
	return nil
}

func runLogout(ctx context.Context, srv adapter.ServerAdapter) error {
	if err := srv.Logout(ctx); err != nil {
		return err
	}
	if err := removeSessionToken(); err != nil {
		return err
	}

	fmt.Println("logged out")
	return nil
}

func runPublish(ctx context.Context, srv adapter.ServerAdapter, args []string) error {
	req, err := parseArticleRequest("publish", args)
	if err != nil {
		return err
	}

	article, err := srv.Publish(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("published article %d: %s (%s)\n", article.ArticleID, article.Title, article.PublishDate)
	return nil
}

func runEdit(ctx context.Context, srv adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	id := fs.Int64("id", 0, "article id")
	title := fs.String("title", "", "article title")
	date := fs.String("date", "", "publish date, YYYY-MM-DD")
	body := fs.String("body", "", "article body")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("edit: -id is required")
	}
	if *title == "" || *date == "" || *body == "" {
		return errors.New("edit: -title, -date and -body are required")
	}

	article, err := srv.Edit(ctx, *id, models.ArticleRequest{Title: *title, Date: *date, Body: *body})
	if err != nil {
		return err
	}

	fmt.Printf("updated article %d: %s (%s)\n", article.ArticleID, article.Title, article.PublishDate)
	return nil
}

func runRemove(ctx context.Context, srv adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("remove", flag.ContinueOnError)
	id := fs.Int64("id", 0, "article id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("remove: -id is required")
	}

	if err := srv.Remove(ctx, *id); err != nil {
		return err
	}

	fmt.Printf("removed article %d\n", *id)
	return nil
}

func runListOwn(ctx context.Context, srv adapter.ServerAdapter) error {
	summaries, err := srv.ListOwn(ctx)
	if err != nil {
		return err
	}

	if len(summaries) == 0 {
		fmt.Println("no articles yet")
		return nil
	}
	for _, s := range summaries {
		fmt.Printf("%6d  %s  %s\n", s.ArticleID, s.PublishDate, s.Title)
	}
	return nil
}

func runView(ctx context.Context, srv adapter.ServerAdapter, args []string) error {
	if len(args) != 1 {
		return errors.New("view: expected exactly one article id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("view: bad article id %q", args[0])
	}

	article, err := srv.ViewPublic(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n%s\n\n%s\n", article.Title, article.PublishDate, article.Body)
	return nil
}

func runListByAuthor(ctx context.Context, srv adapter.ServerAdapter, args []string) error {
	if len(args) != 1 {
		return errors.New("author: expected exactly one handle")
	}

	articles, err := srv.ListByAuthor(ctx, args[0])
	if err != nil {
		return err
	}

	if len(articles) == 0 {
		fmt.Printf("%q has no articles\n", args[0])
		return nil
	}
	for _, a := range articles {
		fmt.Printf("%6d  %s  %s\n", a.ArticleID, a.PublishDate, a.Title)
	}
	return nil
}

func parseCredentials(name string, args []string) (models.CredentialsRequest, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	handle := fs.String("handle", "", "account handle")
	secret := fs.String("secret", "", "account secret")
	if err := fs.Parse(args); err != nil {
		return models.CredentialsRequest{}, err
	}
	if *handle == "" || *secret == "" {
		return models.CredentialsRequest{}, fmt.Errorf("%s: -handle and -secret are required", name)
	}

	return models.CredentialsRequest{Handle: *handle, Secret: *secret}, nil
}

func parseArticleRequest(name string, args []string) (models.ArticleRequest, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	title := fs.String("title", "", "article title")
	date := fs.String("date", "", "publish date, YYYY-MM-DD")
	body := fs.String("body", "", "article body")
	if err := fs.Parse(args); err != nil {
		return models.ArticleRequest{}, err
	}
	if *title == "" || *date == "" || *body == "" {
		return models.ArticleRequest{}, fmt.Errorf("%s: -title, -date and -body are required", name)
	}

	return models.ArticleRequest{Title: *title, Date: *date, Body: *body}, nil
}

func sessionFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, sessionFileName), nil
}

func loadSessionToken() (string, error) {
	path, err := sessionFilePath()
	if err != nil {
		return "", err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func saveSessionToken(token string) error {
	path, err := sessionFilePath()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

func removeSessionToken() error {
	path, err := sessionFilePath()
	if err != nil {
		return err
	}
	if err = os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: blogctl <command> [flags]

commands:
  signup  -handle H -secret S   create an account and log in
  login   -handle H -secret S   log in
  logout                        end the current session
  publish -title T -date D -body B
  edit    -id N -title T -date D -body B
  remove  -id N
  list                          list your own articles
  view    <article-id>          read any published article
  author  <handle>              list an author's articles
  version                       print build info`)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
