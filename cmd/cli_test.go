package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"cinema-tui/auth"
	"cinema-tui/model"
	"cinema-tui/profile"
)

func TestRenderProfile_MasksUnlessRevealed(t *testing.T) {
	user := model.User{Name: "Alice", Email: "ab@example.com", Phone: "0912345678", Gender: "Female"}

	var out bytes.Buffer
	renderProfile(&out, user, auth.Anonymous(), false)
	got := out.String()
	if !strings.Contains(got, "**@example.com") || !strings.Contains(got, "******5678") {
		t.Fatalf("expected masked values, got:\n%s", got)
	}
	if !strings.Contains(got, profile.Placeholder) {
		t.Fatalf("expected placeholder for missing date of birth, got:\n%s", got)
	}

	out.Reset()
	renderProfile(&out, user, auth.Anonymous(), true)
	got = out.String()
	if !strings.Contains(got, "ab@example.com") || !strings.Contains(got, "0912345678") {
		t.Fatalf("expected revealed values, got:\n%s", got)
	}
}

func TestRenderProfile_SessionExpiry(t *testing.T) {
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	session := auth.NewSession(model.Account{Token: "t", Expiry: 60}, issued)

	var out bytes.Buffer
	renderProfile(&out, model.User{Name: "Alice"}, session, false)
	if !strings.Contains(out.String(), "Session expires") {
		t.Fatalf("expected session expiry row, got:\n%s", out.String())
	}
}

func TestRenderTickets(t *testing.T) {
	tickets := []model.Ticket{
		{Id: "b", SeatNumber: 4, Show: &model.Show{Id: 2, Date: "2024-05-02", Movie: &model.Movie{Title: "Dune"}}},
		{Id: "a", SeatNumber: 9, Show: &model.Show{Id: 1, Date: "2024-05-01", Movie: &model.Movie{Title: "Barbie"}}},
	}

	var out bytes.Buffer
	renderTickets(&out, profile.DeriveHistory(tickets))
	got := out.String()
	if strings.Index(got, "Barbie") > strings.Index(got, "Dune") {
		t.Fatalf("expected tickets sorted by show date, got:\n%s", got)
	}
	if !strings.Contains(got, "01/05/2024") || !strings.Contains(got, "2 TICKETS") {
		t.Fatalf("unexpected table:\n%s", got)
	}
}

func TestRenderTickets_Empty(t *testing.T) {
	var out bytes.Buffer
	renderTickets(&out, profile.DeriveHistory(nil))
	if !strings.Contains(out.String(), "You haven't bought any tickets yet") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestVersionString(t *testing.T) {
	version, commit = "1.2.3", "abc123"
	t.Cleanup(func() { version, commit = "dev", "none" })

	if got := versionString(); got != "cinema-tui 1.2.3 (abc123)" {
		t.Fatalf("unexpected version %q", got)
	}
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"login", "logout", "profile", "tickets", "version"} {
		if _, _, err := root.Find([]string{name}); err != nil {
			t.Fatalf("expected subcommand %q: %v", name, err)
		}
	}
	if root.PersistentFlags().Lookup("api-url") == nil {
		t.Fatal("expected --api-url flag")
	}
	profileCmd, _, _ := root.Find([]string{"profile"})
	if profileCmd.Flags().Lookup("reveal") == nil {
		t.Fatal("expected --reveal flag")
	}
}

func TestValidateEmail(t *testing.T) {
	if validateEmail("") == nil || validateEmail("nobody") == nil {
		t.Fatal("expected invalid emails to be rejected")
	}
	if err := validateEmail(" a@b.c "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
