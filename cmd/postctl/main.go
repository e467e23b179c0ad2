// Command postctl is a CLI consumer of the gateway API.
// Usage:
//
//	postctl news [-base URL] [-output json]
//	postctl search [-base URL] [-query "..."]
//	postctl generate [-base URL] [-topic "..."] [-news id,id] [-out file]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"postforge/internal/client"
	"postforge/internal/config"
	"postforge/internal/domain/entity"
)

const defaultBaseURL = "http://localhost:8080"

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "news":
		err = runNews(ctx, os.Args[2:])
	case "search":
		err = runSearch(ctx, os.Args[2:])
	case "generate":
		err = runGenerate(ctx, os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: postctl <news|search|generate> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, `  postctl news -output json`)
	fmt.Fprintln(os.Stderr, `  postctl search -query "ev charging infrastructure"`)
	fmt.Fprintln(os.Stderr, `  postctl generate -topic "Charging Hubs" -news mock-1,mock-2 -out post.txt`)
}

// runNews prints the stored news list, falling back to the mock dataset
// when the gateway cannot serve live data.
func runNews(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("news", flag.ExitOnError)
	baseURL := fs.String("base", defaultBaseURL, "Gateway base URL")
	output := fs.String("output", "text", "Output format: text or json")
	_ = fs.Parse(args)

	items, live := client.New(*baseURL).FetchNewsOrMock(ctx)

	if *output == "json" {
		return json.NewEncoder(os.Stdout).Encode(struct {
			Live  bool              `json:"live"`
			Items []entity.NewsItem `json:"items"`
		}{live, items})
	}

	if !live {
		fmt.Println("(showing mock items; gateway returned no live news)")
	}
	printItems(items)
	return nil
}

// runSearch triggers a search-and-persist pass on the gateway.
func runSearch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	baseURL := fs.String("base", defaultBaseURL, "Gateway base URL")
	query := fs.String("query", "", "Search query (empty uses the server default)")
	_ = fs.Parse(args)

	out, err := client.New(*baseURL).SearchNews(ctx, *query)
	if err != nil {
		return err
	}

	fmt.Printf("found %d items, saved %d\n\n", len(out.Items), out.SavedCount)
	printItems(out.Items)
	return nil
}

// runGenerate requests a post for the configured company profile,
// optionally grounded in selected news items.
func runGenerate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	baseURL := fs.String("base", defaultBaseURL, "Gateway base URL")
	topic := fs.String("topic", "", "Optional topic to narrow the post")
	newsIDs := fs.String("news", "", "Comma-separated news IDs to ground the post in")
	outFile := fs.String("out", "", "Write the post to this file instead of stdout")
	_ = fs.Parse(args)

	profile, err := config.LoadCompanyProfile()
	if err != nil {
		return fmt.Errorf("load company profile: %w", err)
	}

	c := client.New(*baseURL)

	req := client.GenerateRequest{
		CompanyName:         profile.Name,
		CompanyDescription:  profile.Description,
		Industry:            profile.Industry,
		TargetAudience:      profile.TargetAudience,
		UniqueSellingPoints: profile.UniqueSellingPoints,
		Tone:                profile.Tone,
		Topic:               *topic,
	}

	if *newsIDs != "" {
		items, _ := c.FetchNewsOrMock(ctx)
		sel := client.NewSelection(items)
		for _, id := range strings.Split(*newsIDs, ",") {
			sel.Toggle(strings.TrimSpace(id))
		}
		req.SelectedNews = sel.Refs()
	}

	post, err := c.GeneratePost(ctx, req)
	if err != nil {
		return err
	}

	if *outFile != "" {
		return os.WriteFile(*outFile, []byte(post+"\n"), 0o644)
	}
	fmt.Println(post)
	return nil
}

func printItems(items []entity.NewsItem) {
	for _, it := range items {
		fmt.Printf("%s  [%s]\n", it.Title, it.PublishedDate)
		if it.Summary != "" {
			fmt.Printf("  %s\n", it.Summary)
		}
		if it.Source != "" {
			fmt.Printf("  source: %s", it.Source)
			if it.SourceLink != "" {
				fmt.Printf(" (%s)", it.SourceLink)
			}
			fmt.Println()
		}
		fmt.Printf("  id: %s\n\n", it.ID)
	}
}
