package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/userboard/pkg/client"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Browse and manage users",
	}

	cmd.AddCommand(newUsersListCmd())
	cmd.AddCommand(newUsersGetCmd())
	cmd.AddCommand(newUsersAddCmd())
	cmd.AddCommand(newUsersEditCmd())
	cmd.AddCommand(newUsersDeleteCmd())

	return cmd
}

func newUsersListCmd() *cobra.Command {
	var (
		reset    bool
		search   string
		sort     string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users in the saved view",
		Long: `List one page of users. The search term, sort and page are saved and
reused by the next invocation. Passing --sort with the current key flips
the direction; a new search or page size returns to the first page.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := listFlags{reset: reset}
			if cmd.Flags().Changed("search") {
				flags.search = &search
			}
			if cmd.Flags().Changed("sort") {
				flags.sort = &sort
			}
			if cmd.Flags().Changed("page") {
				flags.page = &page
			}
			if cmd.Flags().Changed("page-size") {
				flags.pageSize = &pageSize
			}

			state, err := flags.apply(loadView())
			if err != nil {
				return err
			}

			list, err := apiClient.Users().List(context.Background(), &client.ListOptions{
				Search:    state.SearchTerm,
				Sort:      string(state.Sort.Key),
				Direction: string(state.Sort.Direction),
				Page:      state.Page,
				PageSize:  state.PageSize,
			})
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			// the server clamps the page to the filtered view
			state.Page = list.Page
			if err := saveView(state); err != nil {
				return fmt.Errorf("failed to save view: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(list)
			}

			t := NewTable("ID", "NAME", "EMAIL", "CITY", "ZIPCODE")
			for _, u := range list.Users {
				t.AddRow(
					strconv.FormatInt(u.ID, 10),
					truncate(u.Name, 30),
					truncate(u.Email, 35),
					truncate(u.Address.City, 20),
					u.Address.Zipcode,
				)
			}
			t.Render()
			fmt.Fprintf(out, "\nPage %d of %d (%d users)%s\n", list.Page, list.TotalPages, list.TotalItems, describeView(list))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "clear the saved search, sort and page first")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive name or email filter (empty clears it)")
	cmd.Flags().StringVar(&sort, "sort", "", "sort by name, email, city or zipcode; repeat to reverse")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 5, "users per page: 5, 10 or 15")

	return cmd
}

func describeView(list *client.UserList) string {
	var parts []string
	if list.Sort.Key != "" {
		parts = append(parts, fmt.Sprintf("sorted by %s %s", list.Sort.Key, list.Sort.Direction))
	}
	if list.Search != "" {
		parts = append(parts, fmt.Sprintf("matching %q", list.Search))
	}
	if len(parts) == 0 {
		return ""
	}
	return ", " + strings.Join(parts, ", ")
}

func newUsersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			u, err := apiClient.Users().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return printUser(u)
		},
	}
}

// userFlags holds the add/edit form fields
type userFlags struct {
	name, email, street, city, zipcode string
}

func (f *userFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "full name")
	cmd.Flags().StringVar(&f.email, "email", "", "email address")
	cmd.Flags().StringVar(&f.street, "street", "", "street")
	cmd.Flags().StringVar(&f.city, "city", "", "city")
	cmd.Flags().StringVar(&f.zipcode, "zipcode", "", "zipcode")
}

type formField struct {
	flag  string
	value *string
}

// fields pairs each flag name with its value
func (f *userFlags) fields() []formField {
	return []formField{
		{"name", &f.name},
		{"email", &f.email},
		{"street", &f.street},
		{"city", &f.city},
		{"zipcode", &f.zipcode},
	}
}

func (f *userFlags) input() client.UserInput {
	return client.UserInput{
		Name:    f.name,
		Email:   f.email,
		Street:  f.street,
		City:    f.city,
		Zipcode: f.zipcode,
	}
}

func newUsersAddCmd() *cobra.Command {
	var f userFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a user",
		Long:  "Add a user. Missing fields are prompted for when stdin is a terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if isTerminal() {
				for _, field := range f.fields() {
					if *field.value == "" {
						*field.value = promptInput(strings.ToUpper(field.flag[:1]) + field.flag[1:] + ": ")
					}
				}
			}

			u, err := apiClient.Users().Create(context.Background(), f.input())
			if err != nil {
				return fmt.Errorf("failed to add user: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(u)
			}
			fmt.Fprintf(out, "User %d added\n", u.ID)
			return nil
		},
	}

	f.register(cmd)
	return cmd
}

func newUsersEditCmd() *cobra.Command {
	var f userFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a user",
		Long:  "Edit a user. Fields not given keep their current value; the suite is cleared.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			current, err := apiClient.Users().Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			prefill := userFlags{
				name:    current.Name,
				email:   current.Email,
				street:  current.Address.Street,
				city:    current.Address.City,
				zipcode: current.Address.Zipcode,
			}
			for i, field := range f.fields() {
				if !cmd.Flags().Changed(field.flag) {
					*field.value = *prefill.fields()[i].value
				}
			}

			u, err := apiClient.Users().Update(ctx, id, f.input())
			if err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(u)
			}
			fmt.Fprintf(out, "User %d updated\n", u.ID)
			return nil
		},
	}

	f.register(cmd)
	return cmd
}

func newUsersDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			if !yes {
				if !isTerminal() {
					return fmt.Errorf("refusing to delete user %d without --yes when stdin is not a terminal", id)
				}
				u, err := apiClient.Users().Get(ctx, id)
				if err != nil {
					return fmt.Errorf("failed to get user: %w", err)
				}
				if !confirm(fmt.Sprintf("Delete user %d (%s)?", u.ID, u.Name)) {
					fmt.Fprintln(out, "Aborted")
					return nil
				}
			}

			if err := apiClient.Users().Delete(ctx, id); err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}

			fmt.Fprintf(out, "User %d deleted\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func printUser(u *client.User) error {
	if getOutputFormat() != "table" {
		return printOutput(u)
	}

	t := NewTable("FIELD", "VALUE")
	t.AddRow("ID", strconv.FormatInt(u.ID, 10))
	t.AddRow("Name", u.Name)
	t.AddRow("Email", u.Email)
	t.AddRow("Street", u.Address.Street)
	t.AddRow("Suite", u.Address.Suite)
	t.AddRow("City", u.Address.City)
	t.AddRow("Zipcode", u.Address.Zipcode)
	t.Render()
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid user id %q", s)
	}
	return id, nil
}
