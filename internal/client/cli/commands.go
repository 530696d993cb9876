package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/taskkeeper/internal/api"
	"github.com/dmitrijs2005/taskkeeper/internal/client/client"
	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

var errUsage = errors.New("usage")

// statuses the server accepts, in display order.
var statuses = []string{"OPEN", "IN_PROGRESS", "DONE"}

func isStatus(s string) bool {
	for _, st := range statuses {
		if st == s {
			return true
		}
	}
	return false
}

func (a *App) report(err error) error {
	switch {
	case errors.Is(err, client.ErrUnauthorized) && a.isLoggedIn():
		fmt.Fprintln(a.out, "Session is no longer valid, please login again")
		a.client.Logout()
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintln(a.out, "Invalid username or password")
	case errors.Is(err, client.ErrAlreadyExists):
		fmt.Fprintln(a.out, "This username is already taken")
	case errors.Is(err, client.ErrNotFound):
		fmt.Fprintln(a.out, "Task not found")
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "Server is not reachable, try again later")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
	return err
}

func (a *App) usage(text string) error {
	fmt.Fprintln(a.out, "Usage:", text)
	return errUsage
}

func (a *App) askCredentials() (string, string, error) {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return "", "", err
	}
	if username == "" {
		fmt.Fprintln(a.out, "Username must not be empty")
		return "", "", errUsage
	}

	pw, err := GetPassword(a.out)
	if err != nil {
		return "", "", err
	}
	defer common.WipeByteArray(pw)
	if len(pw) == 0 {
		fmt.Fprintln(a.out, "Password must not be empty")
		return "", "", errUsage
	}
	return username, string(pw), nil
}

func (a *App) Register(ctx context.Context) error {
	username, password, err := a.askCredentials()
	if err != nil {
		return err
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()
	if err := a.client.Register(ctx, username, password); err != nil {
		return a.report(err)
	}

	fmt.Fprintln(a.out, "Registered, you can now login as", username)
	return nil
}

// Login replaces any current session.
func (a *App) Login(ctx context.Context) error {
	username, password, err := a.askCredentials()
	if err != nil {
		return err
	}
	a.client.Logout()
	a.userName = ""

	ctx, cancel := a.requestContext(ctx)
	defer cancel()
	if err := a.client.Login(ctx, username, password); err != nil {
		return a.report(err)
	}

	a.userName = username
	fmt.Fprintln(a.out, "Logged in as", username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// List prints the user's tasks. An optional first argument that names a
// status filters by it; the remaining words form the search text.
func (a *App) List(ctx context.Context, args []string) error {
	var status string
	if len(args) > 0 && isStatus(strings.ToUpper(args[0])) {
		status = strings.ToUpper(args[0])
		args = args[1:]
	}
	search := strings.Join(args, " ")

	ctx, cancel := a.requestContext(ctx)
	defer cancel()
	tasks, err := a.client.ListTasks(ctx, status, search)
	if err != nil {
		return a.report(err)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTITLE")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Status, t.Title)
	}
	return w.Flush()
}

func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("show <id>")
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()
	task, err := a.client.GetTask(ctx, args[0])
	if err != nil {
		return a.report(err)
	}

	a.printTask(task)
	return nil
}

func (a *App) Add(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Fprintln(a.out, "Title must not be empty")
		return errUsage
	}
	description, err := GetSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()
	task, err := a.client.CreateTask(ctx, title, description)
	if err != nil {
		return a.report(err)
	}

	fmt.Fprintln(a.out, "Created task", task.ID)
	return nil
}

func (a *App) Status(ctx context.Context, args []string) error {
	if len(args) != 2 || !isStatus(strings.ToUpper(args[1])) {
		return a.usage("status <id> <" + strings.Join(statuses, "|") + ">")
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()
	task, err := a.client.UpdateTaskStatus(ctx, args[0], strings.ToUpper(args[1]))
	if err != nil {
		return a.report(err)
	}

	fmt.Fprintf(a.out, "Task %s is now %s\n", task.ID, task.Status)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("delete <id>")
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()
	if err := a.client.DeleteTask(ctx, args[0]); err != nil {
		return a.report(err)
	}

	fmt.Fprintln(a.out, "Deleted task", args[0])
	return nil
}

func (a *App) printTask(t *api.Task) {
	fmt.Fprintln(a.out, "ID:         ", t.ID)
	fmt.Fprintln(a.out, "Title:      ", t.Title)
	fmt.Fprintln(a.out, "Status:     ", t.Status)
	if !t.CreatedAt.IsZero() {
		fmt.Fprintln(a.out, "Created:    ", t.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	if t.Description != "" {
		fmt.Fprintln(a.out, "Description:", t.Description)
	}
}
