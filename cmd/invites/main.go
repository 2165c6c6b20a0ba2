// Command invites is an interactive console for managing pending account invites
// through the admin API.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"devportal/config"
	"devportal/internal/adapters/accounts"
	"devportal/internal/adapters/auth"
	"devportal/internal/domain"
	"devportal/internal/usecase"
)

const help = `commands:
  list              show pending invites
  refresh           re-fetch pending invites
  select <n>        select row n (0 clears)
  create            open the create-invite modal
  email <address>   set the invite email address
  delete            open the delete confirmation for the selected row
  confirm           confirm the open modal
  cancel            close the open modal
  dismiss <token>   dismiss a notification
  quit`

func main() {
	var apiURL, token, adminEmail string
	flag.StringVar(&apiURL, "api", "http://localhost:8080", "base URL of the admin API")
	flag.StringVar(&token, "token", "", "admin bearer token (default: minted from JWT_SECRET)")
	flag.StringVar(&adminEmail, "as", "admin@localhost", "email placed in a minted token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg)

	if token == "" && cfg.JWTSecret != "" {
		token, err = auth.NewJWTIssuer(cfg.JWTSecret).Issue("console", adminEmail, []string{domain.RoleAdmin}, time.Hour)
		if err != nil {
			log.Fatalf("Failed to mint admin token: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := accounts.NewClient(apiURL, token, &http.Client{Timeout: cfg.RequestTimeout})
	c := &console{
		view: usecase.NewInviteView(client, logger),
		out:  os.Stdout,
	}
	c.form = usecase.NewCreateInviteForm(c.view)

	if err := c.run(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type console struct {
	view *usecase.InviteView
	form *usecase.CreateInviteForm
	out  io.Writer
}

func (c *console) run(ctx context.Context, in io.Reader) error {
	_ = c.view.Load(ctx)
	c.print()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		fmt.Fprint(c.out, "> ")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
			if cmd == "quit" || cmd == "exit" {
				return nil
			}
			if err := c.exec(ctx, cmd, strings.TrimSpace(arg)); err != nil {
				fmt.Fprintf(c.out, "! %v\n", err)
			}
		}
	}
}

func (c *console) exec(ctx context.Context, cmd, arg string) error {
	st := c.view.State()
	switch cmd {
	case "", "list":
	case "help":
		fmt.Fprintln(c.out, help)
		return nil
	case "refresh":
		// Fetch failures land in the page queue.
		if err := c.view.Refresh(ctx); errors.Is(err, usecase.ErrBusy) {
			return err
		}
	case "select":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 || n > len(st.Accounts) {
			return fmt.Errorf("select: row must be between 0 and %d", len(st.Accounts))
		}
		if n == 0 {
			c.view.Select(nil)
		} else {
			c.view.Select(&st.Accounts[n-1])
		}
	case "create":
		if err := c.view.OpenCreateModal(); err != nil {
			return err
		}
	case "email":
		if !st.CreateModalOpen {
			return usecase.ErrModalClosed
		}
		if err := c.form.SetEmail(arg); err != nil {
			return err
		}
	case "delete":
		if err := c.view.OpenDeleteModal(); err != nil {
			return err
		}
	case "confirm":
		switch {
		case st.CreateModalOpen:
			if err := c.form.Confirm(ctx); errors.Is(err, domain.ErrInvalidEmail) || errors.Is(err, usecase.ErrBusy) {
				return err
			}
			// Show the list once the background refresh lands.
			select {
			case <-c.view.Settled():
			case <-ctx.Done():
				return ctx.Err()
			}
		case st.DeleteModalOpen:
			_ = c.view.ConfirmDelete(ctx)
		default:
			return usecase.ErrModalClosed
		}
	case "cancel":
		if st.CreateModalOpen {
			if err := c.view.CloseCreateModal(); err != nil {
				return err
			}
		}
		c.view.CloseDeleteModal()
	case "dismiss":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("dismiss: %q is not a token", arg)
		}
		if err := c.view.Dismiss(n); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	c.print()
	return nil
}

func (c *console) print() {
	st := c.view.State()
	fmt.Fprintln(c.out)
	_ = usecase.RenderNotifications(c.out, st.Messages)
	if st.Loading {
		fmt.Fprintln(c.out, "(loading)")
	}
	_ = usecase.RenderAccountsTable(c.out, st.Accounts, st.Selected)

	switch {
	case st.CreateModalOpen:
		fmt.Fprintln(c.out, "\n== Create invite ==")
		_ = usecase.RenderNotifications(c.out, st.CreateModalMessages)
		if c.form.ShowWarning() {
			fmt.Fprintln(c.out, "Please enter a valid email address.")
		}
		fmt.Fprintf(c.out, "email: %s\n", c.form.Email())
	case st.DeleteModalOpen:
		if text, ok := usecase.DeleteConfirmation(st.Selected); ok {
			fmt.Fprintln(c.out, "\n== Confirm invite deletion ==")
			fmt.Fprintln(c.out, text)
		}
	}
	fmt.Fprintf(c.out, "[%s] create:%t delete:%t\n", st.Phase(), st.CanCreate(), st.CanDelete())
}
