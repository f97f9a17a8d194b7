// Package menu implements the interactive numbered-menu surface. Each loop
// reads one integer selector per round; 0 returns to the parent menu and
// anything unparsable re-prompts without ending the session.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"orderdesk/internal/export"
	"orderdesk/internal/service"
	"orderdesk/internal/store"
)

const banner = `
  ___  ____  ____  ____  ____  ____  ____  ____  _  _
 / _ \(  _ \(  _ \( ___)(  _ \(  _ \( ___)/ ___)( )/ )
( (_) ))   / )(_) ))__)  )   / )(_) ))__) \___ \ )  (
 \___/(_)\_)(____/(____)(_)\_)(____/(____)(____/(_)\_)`

// Menu drives the interactive session over the services.
type Menu struct {
	catalog   *service.Catalog
	directory *service.Directory
	roster    *service.Roster
	orders    *service.Orders
	db        *sqlx.DB
	exportDir string
	in        *bufio.Scanner
	out       io.Writer
}

// Deps bundles everything the menu dispatches to.
type Deps struct {
	Catalog   *service.Catalog
	Directory *service.Directory
	Roster    *service.Roster
	Orders    *service.Orders
	DB        *sqlx.DB
	ExportDir string
}

// New creates a menu reading selectors from in and writing to out.
func New(deps Deps, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		catalog:   deps.Catalog,
		directory: deps.Directory,
		roster:    deps.Roster,
		orders:    deps.Orders,
		db:        deps.DB,
		exportDir: deps.ExportDir,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run loops over the main menu until the operator exits or input ends.
func (m *Menu) Run(ctx context.Context) {
	fmt.Fprintln(m.out, banner)

	for {
		fmt.Fprint(m.out, "To open the products menu, type '1'\n"+
			"To open the orders menu, type '2'\n"+
			"To open the couriers menu, type '3'\n"+
			"To open the customers menu, type '4'\n"+
			"To export data to CSV, type '5'\n"+
			"To exit the app, type '0'\n")

		choice, ok := m.readChoice()
		if !ok {
			return
		}
		switch choice {
		case 1:
			m.productMenu(ctx)
		case 2:
			m.orderMenu(ctx)
		case 3:
			m.courierMenu(ctx)
		case 4:
			m.customerMenu(ctx)
		case 5:
			m.runExport(ctx)
		case 0:
			return
		default:
			fmt.Fprintln(m.out, "\nInvalid option!")
		}
	}
}

func (m *Menu) runExport(ctx context.Context) {
	paths, err := export.Dump(ctx, m.db, m.exportDir)
	if err != nil {
		fmt.Fprintf(m.out, "\nExport failed: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "\nData exported!")
	for _, p := range paths {
		fmt.Fprintf(m.out, "  %s\n", p)
	}
}

// prompt prints a label and returns the next trimmed input line. The second
// return value is false once input is exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// readChoice reads one menu selector; -1 stands for unparsable input so the
// caller's default branch re-prompts.
func (m *Menu) readChoice() (int, bool) {
	line, ok := m.prompt("")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return -1, true
	}
	return n, true
}

func (m *Menu) promptInt64(label string) (int64, bool) {
	line, ok := m.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		fmt.Fprintln(m.out, "\nInvalid option!")
		return 0, false
	}
	return n, true
}

// confirm asks a y/n question; anything other than "n" keeps going, as the
// selection loop treats only an explicit no as stop.
func (m *Menu) confirm(label string) bool {
	line, ok := m.prompt(label)
	if !ok {
		return false
	}
	return strings.ToLower(line) != "n"
}

// optionalField runs the "update this field? (y/n)" exchange and returns the
// replacement value, or nil when the field keeps its current value.
func (m *Menu) optionalField(question, label string) *string {
	answer, ok := m.prompt(question)
	if !ok || strings.ToLower(answer) != "y" {
		return nil
	}
	value, ok := m.prompt(label)
	if !ok {
		return nil
	}
	return &value
}

func (m *Menu) reportError(err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		fmt.Fprintln(m.out, "\nNot found! Try again!")
	case errors.Is(err, service.ErrEmptyRoster):
		fmt.Fprintln(m.out, "\nNo couriers available! Add a courier first before creating an order!")
	case errors.Is(err, service.ErrNoItems):
		fmt.Fprintln(m.out, "\nNo items ordered! Try again!")
	case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrInvalidTransition):
		fmt.Fprintf(m.out, "\n%v! Try again!\n", err)
	default:
		fmt.Fprintf(m.out, "\nError: %v\n", err)
	}
}
