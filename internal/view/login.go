package view

import (
	"fmt"

	"github.com/fatih/color"

	"postdeck/internal/domain/session"
)

// LoginView is the entry screen. It is one of the two lazy-singleton slots:
// the instance survives navigations and is discarded only on full logout.
type LoginView struct {
	deps Deps
}

func NewLoginView(deps Deps) *LoginView {
	return &LoginView{deps: deps}
}

func (v *LoginView) Init(_ map[string]string) error {
	header := color.New(color.FgCyan, color.Bold)
	header.Fprintln(v.deps.Out, "=== Sign in ===")
	fmt.Fprintln(v.deps.Out, "Use: login <company-code> <region> <email>")
	fmt.Fprintf(v.deps.Out, "Regions: %s, %s, %s\n",
		session.RegionEurope, session.RegionAsia, session.RegionAmericas)
	return nil
}

// Submit performs the mock login and moves to the posts screen on success.
func (v *LoginView) Submit(companyCode string, region session.Region, email string) error {
	sess, err := v.deps.Session.Login(companyCode, region, email)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	color.New(color.FgGreen).Fprintf(v.deps.Out, "Signed in as %s (%s)\n", sess.Email, sess.Region)
	v.deps.Nav.Navigate("posts", nil, false)
	return nil
}

func (v *LoginView) Dispose() {}
