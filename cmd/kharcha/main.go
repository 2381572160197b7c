// Command kharcha is a personal expense tracker backed by a local JSON
// ledger. It records dated expenses and answers filtered listings and
// category summaries over them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"kharcha/internal/cli"
	"kharcha/internal/core"
	"kharcha/internal/export"
	"kharcha/internal/query"
	"kharcha/internal/services"
)

const usageText = `kharcha - track your expenses from the command line

Usage:
  kharcha <command> [flags]

Commands:
  add      Add a new expense
  list     List expenses with filters
  summary  Aggregate expenses per category
  edit     Edit an expense by ID
  delete   Delete an expense by ID
  export   Export a filtered listing to CSV

Run 'kharcha <command> -h' for command flags.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usageText)
		return cli.ExitUsage
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Print(usageText)
		return cli.ExitOK
	}

	cli.LoadEnvFile()
	cfg, err := cli.LoadConfig()
	if err != nil {
		return fail(err)
	}
	logger, closeLog := cli.SetupLogger(cfg)
	defer closeLog()

	repo, err := cli.InitStore(cfg)
	if err != nil {
		return fail(err)
	}
	svc := services.NewExpenseService(repo, cfg.DefaultCurrency, logger)

	ctx := context.Background()
	if err := svc.Load(ctx); err != nil {
		return fail(err)
	}

	switch args[0] {
	case "add":
		return cmdAdd(ctx, svc, args[1:])
	case "list":
		return cmdList(ctx, svc, cfg.DefaultCurrency, args[1:])
	case "summary":
		return cmdSummary(ctx, svc, cfg.DefaultCurrency, args[1:])
	case "edit":
		return cmdEdit(ctx, svc, args[1:])
	case "delete":
		return cmdDelete(ctx, svc, args[1:])
	case "export":
		return cmdExport(ctx, svc, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", args[0], usageText)
		return cli.ExitUsage
	}
}

func fail(err error) int {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return cli.ExitCode(err)
}

func usageError(msg string) int {
	fmt.Fprintln(os.Stderr, "Error:", msg)
	return cli.ExitUsage
}

func cmdAdd(ctx context.Context, svc *services.ExpenseService, args []string) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	dateStr := fs.String("date", "", "date (YYYY-MM-DD), default: today")
	category := fs.String("category", "", "category, e.g. food, transport, rent (required)")
	amountStr := fs.String("amount", "", "amount, must be positive (required)")
	note := fs.String("note", "", "optional note/description")
	currency := fs.String("currency", "", "currency code (default: configured)")
	if err := fs.Parse(args); err != nil {
		return cli.ExitUsage
	}
	if *category == "" || *amountStr == "" {
		return usageError("add requires --category and --amount")
	}

	p := services.AddParams{Category: *category, Currency: *currency, Note: *note}
	if *dateStr != "" {
		d, err := core.ParseDate(*dateStr)
		if err != nil {
			return fail(err)
		}
		p.Date = d
	}
	amount, err := core.ParseAmount(*amountStr)
	if err != nil {
		return fail(err)
	}
	p.Amount = amount

	exp, err := svc.Add(ctx, p)
	if err != nil {
		return fail(err)
	}
	fmt.Println("Added:", cli.RenderExpense(exp))
	return cli.ExitOK
}

// filterFlags are the filter options shared by list, summary and export.
type filterFlags struct {
	month    *string
	category *string
	from     *string
	to       *string
	min      *string
	max      *string
}

func addFilterFlags(fs *flag.FlagSet) *filterFlags {
	return &filterFlags{
		month:    fs.String("month", "", "filter by month (YYYY-MM)"),
		category: fs.String("category", "", "filter by category"),
		from:     fs.String("from", "", "start date (YYYY-MM-DD), inclusive"),
		to:       fs.String("to", "", "end date (YYYY-MM-DD), inclusive"),
		min:      fs.String("min", "", "minimum amount, inclusive"),
		max:      fs.String("max", "", "maximum amount, inclusive"),
	}
}

func (ff *filterFlags) build() (query.Filter, error) {
	f := query.Filter{Month: *ff.month, Category: *ff.category}
	if *ff.from != "" {
		d, err := core.ParseDate(*ff.from)
		if err != nil {
			return query.Filter{}, err
		}
		f.From = &d
	}
	if *ff.to != "" {
		d, err := core.ParseDate(*ff.to)
		if err != nil {
			return query.Filter{}, err
		}
		f.To = &d
	}
	if *ff.min != "" {
		m, err := core.ParseAmount(*ff.min)
		if err != nil {
			return query.Filter{}, err
		}
		f.MinAmount = &m
	}
	if *ff.max != "" {
		m, err := core.ParseAmount(*ff.max)
		if err != nil {
			return query.Filter{}, err
		}
		f.MaxAmount = &m
	}
	return f, nil
}

// listParams parses the sort/limit options shared by list and export.
func listParams(fs *flag.FlagSet, ff *filterFlags, sortStr *string, desc *bool, limit *int) (services.ListParams, error) {
	f, err := ff.build()
	if err != nil {
		return services.ListParams{}, err
	}
	p := services.ListParams{Filter: f, Descending: *desc}
	if *sortStr != "" {
		key, err := query.ParseSortKey(*sortStr)
		if err != nil {
			return services.ListParams{}, err
		}
		p.SortKey = key
	}
	limitSet := false
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "limit" {
			limitSet = true
		}
	})
	if limitSet {
		p.Limit = limit
	}
	return p, nil
}

func cmdList(ctx context.Context, svc *services.ExpenseService, currency string, args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	ff := addFilterFlags(fs)
	sortStr := fs.String("sort", "", "sort by field: date, amount, category")
	desc := fs.Bool("desc", false, "sort in descending order")
	limit := fs.Int("limit", 0, "limit number of results")
	if err := fs.Parse(args); err != nil {
		return cli.ExitUsage
	}

	p, err := listParams(fs, ff, sortStr, desc, limit)
	if err != nil {
		return fail(err)
	}
	rows, err := svc.List(ctx, p)
	if err != nil {
		return fail(err)
	}
	fmt.Println(cli.RenderList(rows, currency))
	return cli.ExitOK
}

func cmdSummary(ctx context.Context, svc *services.ExpenseService, currency string, args []string) int {
	fs := flag.NewFlagSet("summary", flag.ContinueOnError)
	ff := addFilterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cli.ExitUsage
	}

	f, err := ff.build()
	if err != nil {
		return fail(err)
	}
	sum, err := svc.Summary(ctx, f)
	if err != nil {
		return fail(err)
	}
	fmt.Println(cli.RenderSummary(sum, currency))
	return cli.ExitOK
}

func cmdEdit(ctx context.Context, svc *services.ExpenseService, args []string) int {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	id := fs.String("id", "", "expense ID to edit (required)")
	dateStr := fs.String("date", "", "new date (YYYY-MM-DD)")
	category := fs.String("category", "", "new category")
	amountStr := fs.String("amount", "", "new amount")
	note := fs.String("note", "", "new note")
	currency := fs.String("currency", "", "new currency code")
	if err := fs.Parse(args); err != nil {
		return cli.ExitUsage
	}
	if *id == "" {
		return usageError("edit requires --id")
	}

	var p services.EditParams
	var parseErr error
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "date":
			d, err := core.ParseDate(*dateStr)
			if err != nil {
				parseErr = err
				return
			}
			p.Date = &d
		case "category":
			p.Category = category
		case "amount":
			m, err := core.ParseAmount(*amountStr)
			if err != nil {
				parseErr = err
				return
			}
			p.Amount = &m
		case "note":
			p.Note = note
		case "currency":
			p.Currency = currency
		}
	})
	if parseErr != nil {
		return fail(parseErr)
	}
	if p.IsZero() {
		return usageError("edit requires at least one of --date, --category, --amount, --note, --currency")
	}

	exp, err := svc.Edit(ctx, *id, p)
	if err != nil {
		return fail(err)
	}
	fmt.Println("Updated:", cli.RenderExpense(exp))
	return cli.ExitOK
}

func cmdDelete(ctx context.Context, svc *services.ExpenseService, args []string) int {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	id := fs.String("id", "", "expense ID to delete (required)")
	if err := fs.Parse(args); err != nil {
		return cli.ExitUsage
	}
	if *id == "" {
		return usageError("delete requires --id")
	}

	if err := svc.Delete(ctx, *id); err != nil {
		return fail(err)
	}
	fmt.Println("Deleted:", *id)
	return cli.ExitOK
}

func cmdExport(ctx context.Context, svc *services.ExpenseService, args []string) int {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("out", "", "output CSV file (required)")
	ff := addFilterFlags(fs)
	sortStr := fs.String("sort", "", "sort by field: date, amount, category")
	desc := fs.Bool("desc", false, "sort in descending order")
	limit := fs.Int("limit", 0, "limit number of results")
	if err := fs.Parse(args); err != nil {
		return cli.ExitUsage
	}
	if *out == "" {
		return usageError("export requires --out")
	}

	p, err := listParams(fs, ff, sortStr, desc, limit)
	if err != nil {
		return fail(err)
	}
	rows, err := svc.List(ctx, p)
	if err != nil {
		return fail(err)
	}
	if err := export.ToFile(*out, rows); err != nil {
		return fail(err)
	}
	fmt.Printf("Exported %d expense(s) to %s\n", len(rows), *out)
	return cli.ExitOK
}
