package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"profile-manager/internal/delivery/http/dto"
	domain "profile-manager/internal/domain/profile"
	"profile-manager/internal/seeder"
	"profile-manager/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.session.SetMode(ui.ModeList)
			c.session.Refresh(cmd.Context())
			if err := c.session.Err(); err != nil {
				return err
			}
			return printTable(cmd.OutOrStdout(), c.session.Profiles)
		},
	}
}

func newGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get <username>",
		Short: "Show one profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.session.Search(cmd.Context(), args[0])
			if err := c.session.Err(); err != nil {
				return err
			}
			if c.session.Selected == nil {
				return nil
			}
			return printJSON(cmd.OutOrStdout(), *c.session.Selected)
		},
	}
}

func newCreateCmd(c *cli) *cobra.Command {
	var username string
	var ff formFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.session.SetMode(ui.ModeCreate)
			form := ui.NewForm()
			form.Username = username
			if err := ff.apply(cmd.Flags(), &form); err != nil {
				return c.usageError(err)
			}
			c.session.Form = form
			c.session.SubmitCreate(cmd.Context())
			return c.session.Err()
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "unique username")
	_ = cmd.MarkFlagRequired("username")
	ff.register(cmd.Flags())
	return cmd
}

func newUpdateCmd(c *cli) *cobra.Command {
	var rename string
	var ff formFlags

	cmd := &cobra.Command{
		Use:   "update <username>",
		Short: "Update the given fields of a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().NFlag() == 0 {
				return c.usageError(fmt.Errorf("%w: no fields to update", domain.ErrValidation))
			}

			c.session.Search(cmd.Context(), args[0])
			if err := c.session.Err(); err != nil {
				return err
			}
			if c.session.Selected == nil {
				return fmt.Errorf("%w: %s", domain.ErrNotFound, args[0])
			}

			c.session.Edit(*c.session.Selected)
			form := c.session.Form
			if cmd.Flags().Changed("rename") {
				form.Username = rename
			}
			if err := ff.apply(cmd.Flags(), &form); err != nil {
				return c.usageError(err)
			}
			c.session.Form = form
			c.session.SubmitUpdate(cmd.Context())
			return c.session.Err()
		},
	}
	cmd.Flags().StringVar(&rename, "rename", "", "new username")
	ff.register(cmd.Flags())
	return cmd
}

func newDeleteCmd(c *cli) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var confirm func(string) bool
			if !yes {
				confirm = promptConfirm(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			c.session.Delete(cmd.Context(), args[0], confirm)
			return c.session.Err()
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}

func newSeedCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo profiles that do not exist yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := seeder.Default().Run(cmd.Context(), c.client)
			if err != nil {
				return c.usageError(err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[success] %d demo profiles created\n", n)
			return nil
		},
	}
}

func (c *cli) usageError(err error) error {
	_, _ = fmt.Fprintf(c.errOut, "[error] %v\n", err)
	return err
}

// formFlags are the profile fields shared by create and update. Only flags
// set on the command line are written into the form.
type formFlags struct {
	bio          string
	avatarURL    string
	dob          string
	gender       string
	address      string
	city         string
	state        string
	country      string
	website      string
	occupation   string
	interests    string
	friendsCount int
	groupsCount  int
	active       bool
}

func (f *formFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.bio, "bio", "", "short biography")
	fs.StringVar(&f.avatarURL, "avatar-url", "", "avatar image URL")
	fs.StringVar(&f.dob, "dob", "", "date of birth, YYYY-MM-DD")
	fs.StringVar(&f.gender, "gender", "", "unspecified, male, female, other or 0-3")
	fs.StringVar(&f.address, "address", "", "street address")
	fs.StringVar(&f.city, "city", "", "city")
	fs.StringVar(&f.state, "state", "", "state or province")
	fs.StringVar(&f.country, "country", "", "country")
	fs.StringVar(&f.website, "website", "", "personal website")
	fs.StringVar(&f.occupation, "occupation", "", "occupation")
	fs.StringVar(&f.interests, "interests", "", "comma separated interests")
	fs.IntVar(&f.friendsCount, "friends-count", 0, "number of friends")
	fs.IntVar(&f.groupsCount, "groups-count", 0, "number of groups")
	fs.BoolVar(&f.active, "active", true, "whether the profile is active")
}

func (f *formFlags) apply(fs *pflag.FlagSet, form *ui.Form) error {
	set := func(name string, dst *string, v string) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	set("bio", &form.Bio, f.bio)
	set("avatar-url", &form.AvatarURL, f.avatarURL)
	set("dob", &form.DateOfBirth, f.dob)
	set("address", &form.Address, f.address)
	set("city", &form.City, f.city)
	set("state", &form.State, f.state)
	set("country", &form.Country, f.country)
	set("website", &form.Website, f.website)
	set("occupation", &form.Occupation, f.occupation)
	set("interests", &form.Interests, f.interests)

	if fs.Changed("gender") {
		g, err := parseGender(f.gender)
		if err != nil {
			return err
		}
		form.Gender = g
	}
	if fs.Changed("friends-count") {
		form.FriendsCount = f.friendsCount
	}
	if fs.Changed("groups-count") {
		form.GroupsCount = f.groupsCount
	}
	if fs.Changed("active") {
		form.IsActive = f.active
	}
	return nil
}

func parseGender(raw string) (domain.Gender, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for g := domain.GenderUnspecified; g <= domain.GenderOther; g++ {
		if raw == g.String() {
			return g, nil
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil || !domain.Gender(n).Valid() {
		return 0, fmt.Errorf("invalid gender %q", raw)
	}
	return domain.Gender(n), nil
}

func promptConfirm(in io.Reader, out io.Writer) func(string) bool {
	reader := bufio.NewReader(in)
	return func(username string) bool {
		_, _ = fmt.Fprintf(out, "Delete profile %q? [y/N]: ", username)
		line, _ := reader.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		default:
			return false
		}
	}
}

func printTable(w io.Writer, items []domain.Profile) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tUSERNAME\tCITY\tCOUNTRY\tGENDER\tACTIVE")
	for _, p := range items {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%t\n",
			p.UserID, p.Username, orDash(p.City), orDash(p.Country), p.Gender, p.IsActive)
	}
	return tw.Flush()
}

func printJSON(w io.Writer, p domain.Profile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewProfileResponse(p))
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
