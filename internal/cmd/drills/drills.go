// Package drills implements the drills command: small runnable demos of the
// library packages, one subcommand each.
package drills

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/drills/blackjack"
	"github.com/katalvlaran/drills/cartesian"
	"github.com/katalvlaran/drills/generators"
	"github.com/katalvlaran/drills/internal/config"
	"github.com/katalvlaran/drills/internal/log"
	"github.com/katalvlaran/drills/roulette"
	"github.com/katalvlaran/drills/treap"
	"github.com/katalvlaran/drills/workerpool"
)

var (
	// ErrUsage is returned for a missing or unknown subcommand.
	ErrUsage = errors.New("drills: usage")
	// ErrBadArgument is returned when a positional argument cannot be parsed.
	ErrBadArgument = errors.New("drills: bad argument")
)

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, env *runEnv, args []string) error
}

type runEnv struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

var commands = []command{
	{"blackjack", "play bots (and an optional human) against the dealer", runBlackjack},
	{"roulette", "run the four roulette strategies against each other", runRoulette},
	{"cartesian", "sum the Cartesian product of comma-separated sets", runCartesian},
	{"primes", "print the first N primes, or the Nth with --kth", runPrimes},
	{"colors", "print RGBA colors by 1-based index", runColors},
	{"treap", "index words in a treap and print them in order", runTreap},
	{"pool", "compute primes on a worker pool and dump its metrics", runPool},
}

// Run dispatches args[0] to a subcommand. Output goes to stdout, diagnostics
// and usage to stderr. Human blackjack input is read from stdin.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return fmt.Errorf("no command: %w", ErrUsage)
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(ctx, &runEnv{stdin: stdin, stdout: stdout, stderr: stderr}, args[1:])
		}
	}
	usage(stderr)

	return fmt.Errorf("unknown command %q: %w", args[0], ErrUsage)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: drills <command> [flags] [args]")
	fmt.Fprintln(w, "commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.usage)
	}
}

// parse registers the shared flags on fs, parses args and applies verbosity.
func parse(env *runEnv, fs *pflag.FlagSet, args []string) (config.Config, error) {
	fs.SetOutput(env.stderr)
	cfg, err := config.Parse(fs, args)
	if err != nil {
		return config.Config{}, err
	}
	if cfg.Verbose {
		log.SetOutput(env.stderr)
		log.EnableVerbose()
	} else {
		log.DisableVerbose()
	}

	return cfg, nil
}

func runBlackjack(ctx context.Context, env *runEnv, args []string) error {
	fs := pflag.NewFlagSet("blackjack", pflag.ContinueOnError)
	human := fs.String("human", "", "name of a human player reading moves from stdin")
	chips := fs.Int("chips", 1000, "starting chips per player")
	cfg, err := parse(env, fs, args)
	if err != nil {
		return err
	}

	g, err := blackjack.NewGame(
		blackjack.WithDecks(cfg.Decks),
		blackjack.WithMaxRounds(cfg.Rounds),
		blackjack.WithRand(cfg.Rand()),
	)
	if err != nil {
		return err
	}

	bots := []struct {
		name     string
		strategy blackjack.Strategy
		style    blackjack.BettingStyle
	}{
		{"Carl", blackjack.Conservative{}, blackjack.StyleConservative},
		{"Alice", blackjack.Aggressive{}, blackjack.StyleAggressive},
		{"Bob", blackjack.Basic{}, blackjack.StyleStandard},
	}
	for _, b := range bots {
		p, err := blackjack.NewBot(b.name, b.strategy, b.style, *chips)
		if err != nil {
			return err
		}
		if err := g.AddPlayer(p); err != nil {
			return err
		}
	}
	if *human != "" {
		p, err := blackjack.NewHuman(*human, *chips, env.stdin, env.stdout)
		if err != nil {
			return err
		}
		if err := g.AddPlayer(p); err != nil {
			return err
		}
	}
	if err := g.Start(); err != nil {
		return err
	}

	fmt.Fprintf(env.stdout, "blackjack game %s\n", g.ID())
	for g.Active() {
		if err := ctx.Err(); err != nil {
			return err
		}
		rep, err := g.PlayRound()
		if err != nil {
			return err
		}
		fmt.Fprint(env.stdout, rep)
	}

	fmt.Fprintf(env.stdout, "finished after %d rounds\n", g.Round())
	for i, s := range g.Standings() {
		fmt.Fprintf(env.stdout, "%d. %s (%s): %d\n", i+1, s.Name, s.Kind, s.Chips)
	}

	return nil
}

func runRoulette(ctx context.Context, env *runEnv, args []string) error {
	fs := pflag.NewFlagSet("roulette", pflag.ContinueOnError)
	balance := fs.Int("balance", 1000, "starting balance per player")
	cfg, err := parse(env, fs, args)
	if err != nil {
		return err
	}

	seats := []struct {
		name     string
		strategy roulette.Strategy
	}{
		{"Connie", &roulette.Conservative{}},
		{"Rick", roulette.Risk{}},
		{"Mega", roulette.MegaRisk{}},
		{"Marty", &roulette.Martingale{}},
	}
	players := make([]*roulette.Player, 0, len(seats))
	for _, s := range seats {
		p, err := roulette.NewPlayer(s.name, *balance, roulette.MinAge, s.strategy)
		if err != nil {
			return err
		}
		players = append(players, p)
	}

	g, err := roulette.NewGame(players, roulette.WithMaxRounds(cfg.Rounds), roulette.WithRand(cfg.Rand()))
	if err != nil {
		return err
	}

	fmt.Fprintf(env.stdout, "roulette game %s\n", g.ID())
	for !g.IsOver() {
		if err := ctx.Err(); err != nil {
			return err
		}
		rep, err := g.PlayRound()
		if err != nil {
			return err
		}
		fmt.Fprintf(env.stdout, "round %d: %s\n", rep.Round, rep.Outcome)
		for _, pb := range rep.Bets {
			fmt.Fprintf(env.stdout, "  %s bet %s, got %d\n", pb.Player, pb.Bet, pb.Payout)
		}
	}

	fmt.Fprintf(env.stdout, "finished after %d rounds\n", g.Round())
	for i, s := range g.Standings() {
		fmt.Fprintf(env.stdout, "%d. %s: %d\n", i+1, s.Name, s.Balance)
	}

	return nil
}

// runCartesian takes each positional argument as one comma-separated set.
func runCartesian(ctx context.Context, env *runEnv, args []string) error {
	fs := pflag.NewFlagSet("cartesian", pflag.ContinueOnError)
	closed := fs.Bool("closed-form", false, "also print the closed-form sum")
	cfg, err := parse(env, fs, args)
	if err != nil {
		return err
	}

	sets := make([][]int, 0, fs.NArg())
	for _, arg := range fs.Args() {
		set, err := parseInts(arg)
		if err != nil {
			return err
		}
		sets = append(sets, set)
	}

	sum, err := cartesian.Sum(ctx, sets, cartesian.WithWorkers(cfg.Workers))
	if err != nil {
		return err
	}
	fmt.Fprintln(env.stdout, sum)
	if *closed {
		fmt.Fprintln(env.stdout, cartesian.ClosedFormSum(sets))
	}

	return nil
}

func runPrimes(_ context.Context, env *runEnv, args []string) error {
	fs := pflag.NewFlagSet("primes", pflag.ContinueOnError)
	kth := fs.Bool("kth", false, "print only the Nth prime")
	if _, err := parse(env, fs, args); err != nil {
		return err
	}
	n, err := positiveArg(fs, 10)
	if err != nil {
		return err
	}

	if *kth {
		p, err := generators.KthPrime(n)
		if err != nil {
			return err
		}
		fmt.Fprintln(env.stdout, p)

		return nil
	}

	out := make([]string, 0, n)
	for p := range generators.Primes() {
		out = append(out, strconv.Itoa(p))
		if len(out) == n {
			break
		}
	}
	fmt.Fprintln(env.stdout, strings.Join(out, " "))

	return nil
}

func runColors(_ context.Context, env *runEnv, args []string) error {
	fs := pflag.NewFlagSet("colors", pflag.ContinueOnError)
	if _, err := parse(env, fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(env.stdout, generators.TotalColors)
		return nil
	}

	for _, arg := range fs.Args() {
		i, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("color index %q: %w", arg, ErrBadArgument)
		}
		c, err := generators.ColorAt(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(env.stdout, "%d: %s\n", i, c)
	}

	return nil
}

// runTreap counts word occurrences and prints them in key order.
func runTreap(_ context.Context, env *runEnv, args []string) error {
	fs := pflag.NewFlagSet("treap", pflag.ContinueOnError)
	cfg, err := parse(env, fs, args)
	if err != nil {
		return err
	}

	t := treap.New[string, int](treap.WithRand(cfg.Rand()))
	for _, w := range fs.Args() {
		n, _ := t.Get(w)
		t.Set(w, n+1)
	}
	if err := t.Validate(); err != nil {
		return err
	}

	for k, v := range t.All() {
		fmt.Fprintf(env.stdout, "%s %d\n", k, v)
	}
	log.Verbosef("[treap]\t%d keys, height %d", t.Len(), t.Height())

	return nil
}

// runPool finds the first N primes, one KthPrime call per task, and prints
// their sum followed by the pool's metrics in Prometheus text format.
func runPool(ctx context.Context, env *runEnv, args []string) error {
	fs := pflag.NewFlagSet("pool", pflag.ContinueOnError)
	cfg, err := parse(env, fs, args)
	if err != nil {
		return err
	}
	n, err := positiveArg(fs, 20)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	p, err := workerpool.New(cfg.Workers,
		workerpool.WithName("primes"),
		workerpool.WithRegisterer(reg),
		workerpool.WithErrorHandler(func(err error) {
			fmt.Fprintln(env.stderr, "task failed:", err)
		}),
	)
	if err != nil {
		return err
	}

	primes := make([]int, n)
	for i := range n {
		err := p.Enqueue(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := generators.KthPrime(i + 1)
			if err != nil {
				return err
			}
			primes[i] = v

			return nil
		})
		if err != nil {
			p.Dispose()
			return err
		}
	}
	p.Dispose()

	sum := 0
	for _, v := range primes {
		sum += v
	}
	st := p.Stats()
	fmt.Fprintf(env.stdout, "sum of first %d primes: %d (%d/%d tasks ok)\n", n, sum, st.Completed-st.Failed, st.Submitted)

	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(env.stdout, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}

	return nil
}

func parseInts(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("set %q: %w", s, ErrBadArgument)
		}
		out = append(out, v)
	}

	return out, nil
}

// positiveArg reads the first positional argument as a positive count,
// falling back to def when there is none.
func positiveArg(fs *pflag.FlagSet, def int) (int, error) {
	if fs.NArg() == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(fs.Arg(0))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("count %q: %w", fs.Arg(0), ErrBadArgument)
	}

	return n, nil
}
