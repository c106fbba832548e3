// Command blogctl is a small command-line client for the blog catalog API.
//
// Usage:
//
//	blogctl [-s http://localhost:8080] <command> [arguments]
//
// Commands:
//
//	register <username> <name> <password>   create a user account
//	login <username> <password>             log in and print the bearer token
//	list                                    print all blogs
//	users                                   print all users with their blogs
//	user <id>                               print a user and their blogs
//	create <title> <author> <url>           add a blog (requires token)
//	like <id> <likes>                       set the likes counter of a blog
//	delete <id>                             delete an owned blog (requires token)
//
// Authenticated commands read the bearer token from the BLOGCTL_TOKEN
// environment variable, as printed by a previous login.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/bloglist/bloglist/internal/client"
	"github.com/bloglist/bloglist/models"
)

func main() {
	serverURL := flag.String("s", getenv("BLOGCTL_SERVER", "http://localhost:8080"), "base URL of the blog catalog server")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cli := client.New(client.Config{BaseURL: *serverURL})
	if token := os.Getenv("BLOGCTL_TOKEN"); token != "" {
		cli.SetToken(token)
	}

	if err := run(context.Background(), cli, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "blogctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cli *client.Client, command string, args []string) error {
	switch command {
	case "register":
		if len(args) != 3 {
			return fmt.Errorf("usage: register <username> <name> <password>")
		}
		user, err := cli.Register(ctx, models.Credentials{Username: args[0], Name: args[1], Password: args[2]})
		if err != nil {
			return err
		}
		return printJSON(user)

	case "login":
		if len(args) != 2 {
			return fmt.Errorf("usage: login <username> <password>")
		}
		login, err := cli.Login(ctx, models.Credentials{Username: args[0], Password: args[1]})
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s (%s)\n", login.Username, login.Name)
		fmt.Printf("export BLOGCTL_TOKEN=%s\n", login.Token)
		return nil

	case "list":
		blogs, err := cli.ListBlogs(ctx)
		if err != nil {
			return err
		}
		return printJSON(blogs)

	case "users":
		users, err := cli.ListUsers(ctx)
		if err != nil {
			return err
		}
		return printJSON(users)

	case "user":
		if len(args) != 1 {
			return fmt.Errorf("usage: user <id>")
		}
		userID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		user, err := cli.GetUser(ctx, userID)
		if err != nil {
			return err
		}
		return printJSON(user)

	case "create":
		if len(args) != 3 {
			return fmt.Errorf("usage: create <title> <author> <url>")
		}
		created, err := cli.CreateBlog(ctx, models.NewBlogRequest{Title: args[0], Author: args[1], URL: args[2]})
		if err != nil {
			return err
		}
		return printJSON(created)

	case "like":
		if len(args) != 2 {
			return fmt.Errorf("usage: like <id> <likes>")
		}
		blogID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid blog id %q", args[0])
		}
		likes, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid likes value %q", args[1])
		}
		updated, err := cli.UpdateBlog(ctx, blogID, models.BlogPatch{Likes: &likes})
		if err != nil {
			return err
		}
		return printJSON(updated)

	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("usage: delete <id>")
		}
		blogID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid blog id %q", args[0])
		}
		if err := cli.DeleteBlog(ctx, blogID); err != nil {
			return err
		}
		fmt.Printf("deleted blog %d\n", blogID)
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
