package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/craftline/website-be/internal/admin/domain"
	"github.com/craftline/website-be/internal/admin/view"
)

// terminalRenderer implements view.Renderer on a terminal. It remembers the
// last filled form so edits can keep unchanged fields.
type terminalRenderer struct {
	out  io.Writer
	form domain.JobRecord
}

func newTerminalRenderer(out io.Writer) *terminalRenderer {
	return &terminalRenderer{out: out}
}

func (r *terminalRenderer) ShowLogin() {
	fmt.Fprintln(r.out, "Admin panel. Log in with: login <password>")
}

func (r *terminalRenderer) ShowPanel(jobs []domain.JobRecord) {
	fmt.Fprintf(r.out, "Job listings (%d):\n", len(jobs))
	for _, job := range jobs {
		fmt.Fprintf(r.out, "  %s  %-30s %-20s %-15s %s\n",
			job.ID, job.Title, job.Company, job.Location, job.PostedDate)
	}
}

func (r *terminalRenderer) FillForm(rec domain.JobRecord) {
	r.form = rec
	fmt.Fprintf(r.out, "Editing %s: %q at %q, %s, posted %s\n",
		rec.ID, rec.Title, rec.Company, rec.Location, rec.PostedDate)
}

func (r *terminalRenderer) ResetForm() {
	r.form = domain.JobRecord{}
}

func (r *terminalRenderer) Notify(message string, isError bool) {
	if isError {
		fmt.Fprintf(r.out, "! %s\n", message)
		return
	}
	fmt.Fprintf(r.out, "* %s\n", message)
}

// runPanel drives the admin view from terminal commands until EOF or quit
func runPanel(panel *view.AdminView, renderer *terminalRenderer, in io.Reader) error {
	reader := bufio.NewReader(in)

	panel.Open()

	for {
		fmt.Fprint(renderer.out, "> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		switch cmd {
		case "":
			continue
		case "login":
			panel.SubmitLogin(arg)
		case "logout":
			panel.Logout()
		case "list":
			panel.Open()
		case "add":
			panel.ClearForm()
			panel.SubmitJob(promptForm(reader, renderer, domain.JobRecord{}))
		case "edit":
			panel.BeginEdit(arg)
			if panel.Mode() == view.ModeEditing {
				panel.SubmitJob(promptForm(reader, renderer, renderer.form))
			}
		case "delete":
			panel.DeleteJob(arg)
		case "clear":
			panel.ClearForm()
		case "help":
			fmt.Fprintln(renderer.out, "Commands: login <password>, logout, list, add, edit <id>, delete <id>, clear, quit")
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(renderer.out, "Unknown command %q, try help\n", cmd)
		}
	}
}

// promptForm reads the job form fields; an empty answer keeps the value
// from the loaded record.
func promptForm(reader *bufio.Reader, renderer *terminalRenderer, current domain.JobRecord) view.JobForm {
	return view.JobForm{
		Title:       promptField(reader, renderer, "Title", current.Title),
		Company:     promptField(reader, renderer, "Company", current.Company),
		Location:    promptField(reader, renderer, "Location", current.Location),
		Description: promptField(reader, renderer, "Description", current.Description),
		PostedDate:  promptField(reader, renderer, "Posted date (YYYY-MM-DD)", current.PostedDate),
	}
}

func promptField(reader *bufio.Reader, renderer *terminalRenderer, label, current string) string {
	if current != "" {
		fmt.Fprintf(renderer.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(renderer.out, "%s: ", label)
	}

	line, err := reader.ReadString('\n')
	if err != nil {
		return current
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	return line
}
