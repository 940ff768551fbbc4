package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msomdec/bookshelf/internal/domain"
	"github.com/msomdec/bookshelf/internal/repository/document"
	"github.com/msomdec/bookshelf/internal/service"
)

type openFunc func(ctx context.Context) (domain.Backend, error)

// app is populated before any subcommand runs.
type app struct {
	store domain.Backend
	users *document.UserRepository
	books *service.BookService
}

func newRootCmd(open openFunc) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "bookshelfctl",
		Short:         "Inspect and seed the bookshelf store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			store, err := open(cmd.Context())
			if err != nil {
				return err
			}
			a.store = store
			a.users = document.NewUserRepository(store)
			a.books = service.NewBookService(document.NewBookRepository(store))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.store == nil {
				return nil
			}
			return a.store.Close()
		},
	}

	root.AddCommand(newImportCmd(a), newBooksCmd(a), newUsersCmd(a))
	return root
}

type importRecord struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"publishedYear"`
}

func newImportCmd(a *app) *cobra.Command {
	var file, owner string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import books from a JSON array file, owned by an existing user",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			var records []importRecord
			if err := json.Unmarshal(data, &records); err != nil {
				return fmt.Errorf("parse %s: %w", file, err)
			}
			return a.importBooks(cmd.Context(), cmd.OutOrStdout(), owner, records)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON file holding an array of books")
	cmd.Flags().StringVar(&owner, "owner", "", "email of the user who will own the books")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("owner")
	return cmd
}

func (a *app) importBooks(ctx context.Context, out io.Writer, ownerEmail string, records []importRecord) error {
	owner, err := a.users.GetByEmail(ctx, ownerEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no user registered as %s", ownerEmail)
		}
		return err
	}

	var imported, skipped, failed int
	for _, rec := range records {
		in := service.BookInput{
			Title:         strings.TrimSpace(rec.Title),
			Author:        strings.TrimSpace(rec.Author),
			Genre:         strings.TrimSpace(rec.Genre),
			PublishedYear: rec.PublishedYear,
		}
		fmt.Fprintf(out, "Importing: %s by %s... ", in.Title, in.Author)

		book, err := a.books.Create(ctx, owner.ID, in)
		var dup *domain.DuplicateBookError
		switch {
		case errors.As(err, &dup):
			fmt.Fprintf(out, "SKIPPED (exists as %s)\n", dup.ExistingID)
			skipped++
		case errors.Is(err, domain.ErrInvalidInput):
			fmt.Fprintf(out, "ERROR - %v\n", err)
			failed++
		case err != nil:
			return err
		default:
			fmt.Fprintf(out, "SUCCESS (ID: %s)\n", book.ID)
			imported++
		}
	}

	fmt.Fprintf(out, "\nImport complete!\n")
	fmt.Fprintf(out, "Imported: %d, skipped: %d, errors: %d\n", imported, skipped, failed)
	return nil
}

func newBooksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List every book in the catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			page, err := a.books.List(cmd.Context(), 1, math.MaxInt)
			if errors.Is(err, domain.ErrNotFound) {
				fmt.Fprintln(out, "No books found")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%-36s %-40s %-25s %-15s %s\n", "ID", "Title", "Author", "Genre", "Year")
			fmt.Fprintln(out, strings.Repeat("-", 125))
			for _, b := range page.Books {
				fmt.Fprintf(out, "%-36s %-40s %-25s %-15s %d\n",
					b.ID, truncateString(b.Title, 40), truncateString(b.Author, 25), truncateString(b.Genre, 15), b.PublishedYear)
			}
			fmt.Fprintf(out, "\n%d books\n", page.Total)
			return nil
		},
	}
}

func newUsersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			users, err := a.users.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Fprintln(out, "No users registered")
				return nil
			}

			fmt.Fprintf(out, "%-36s %s\n", "ID", "Email")
			fmt.Fprintln(out, strings.Repeat("-", 70))
			for _, u := range users {
				fmt.Fprintf(out, "%-36s %s\n", u.ID, u.Email)
			}
			return nil
		},
	}
}

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
