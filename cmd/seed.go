/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/studenthub/apiserver/config"
	"github.com/studenthub/apiserver/internal/db"
	"github.com/studenthub/apiserver/internal/services"
	"github.com/studenthub/apiserver/internal/store"
)

var (
	seedMore  bool
	seedReset bool
)

// seedCmd represents the seed command.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the blog_posts collection",
	Long: `Seed the blog_posts collection with sample data.

The default run inserts the starter posts only when the collection is
empty. --more inserts the expanded set regardless (it will duplicate on
repeat runs). --reset deletes all posts first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		client, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("connecting to mongodb: %w", err)
		}
		defer client.Disconnect(context.Background())

		postRepo := store.NewPostRepository(db.Database(client, cfg))
		postService := services.NewPostService(postRepo)

		if seedReset {
			deleted, err := postService.Reset(ctx)
			if err != nil {
				return fmt.Errorf("resetting posts: %w", err)
			}
			fmt.Printf("deleted %d posts\n", deleted)
		}

		if seedMore {
			n, err := postService.SeedMore(ctx)
			if err != nil {
				return fmt.Errorf("seeding posts: %w", err)
			}
			fmt.Printf("inserted %d posts\n", n)
			return nil
		}

		inserted, existing, err := postService.SeedSamples(ctx)
		if err != nil {
			return fmt.Errorf("seeding posts: %w", err)
		}
		if existing > 0 {
			fmt.Printf("collection already has %d posts, nothing inserted\n", existing)
			return nil
		}
		fmt.Printf("inserted %d posts\n", inserted)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().BoolVar(&seedMore, "more", false, "insert the expanded seed set (not idempotent)")
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "delete all posts before seeding")
}
