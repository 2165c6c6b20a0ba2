package usecase

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"devportal/internal/domain"
)

const dateInvitedLayout = "2006-01-02 15:04"

// RenderAccountsTable writes one row per account, in order, under the columns
// Email address, Date invited and Inviter. The selected row is marked with "*".
func RenderAccountsTable(w io.Writer, accounts []domain.Account, selected *domain.Account) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\t#\tEmail address\tDate invited\tInviter")
	for i, a := range accounts {
		mark := ""
		if selected != nil && selected.IdentityPoolID == a.IdentityPoolID {
			mark = "*"
		}
		invited := "-"
		if !a.DateInvited.IsZero() {
			invited = fmt.Sprintf("%s (%s)", a.DateInvited.Format(dateInvitedLayout), humanize.Time(a.DateInvited))
		}
		inviter := a.Inviter
		if inviter == "" {
			inviter = "-"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", mark, i+1, a.EmailAddress, invited, inviter)
	}
	return tw.Flush()
}

// RenderNotifications writes one line per notification, prefixed with its dismiss token.
func RenderNotifications(w io.Writer, q NotificationQueue) error {
	for _, n := range q {
		if _, err := fmt.Fprintf(w, "[%d] %s: %s\n", n.Token, n.Kind, n.Message()); err != nil {
			return err
		}
	}
	return nil
}
