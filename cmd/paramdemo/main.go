// Command paramdemo is a small interactive/batch harness exercising
// package params end to end: it declares a couple of demo signatures,
// parses call expressions from the command line or stdin, binds them, and
// prints the resulting slots or the precise BindError.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/yasushi-saito/readline"
	"golang.org/x/sync/semaphore"

	"grailquery/call"
	"grailquery/params"
	"grailquery/value"
)

var (
	docFlag   = flag.Bool("doc", false, "Print Markdown documentation for the demo signatures and exit")
	replFlag  = flag.Bool("repl", false, "Run an interactive readline loop over the demo signatures")
	batchFlag = flag.Int("batch", 0, "Bind this many copies of the commandline calls concurrently, then report how many were bound")
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	flag.Parse()
	sigs := demoSignatures()

	switch {
	case *docFlag:
		runDoc(sigs)
	case *replFlag:
		runRepl(sigs)
	case *batchFlag > 0:
		runBatch(sigs, flag.Args(), *batchFlag)
	default:
		runOnce(sigs, flag.Args())
	}
}

func runDoc(sigs map[string]*params.Signature) {
	for _, name := range []string{"f", "g"} {
		sig := sigs[name]
		types := make([]string, sig.Len())
		docs := make([]string, sig.Len())
		if err := renderMarkdown(os.Stdout, sig, types, docs, defaultMarkdownOptions()); err != nil {
			log.Error.Printf("renderMarkdown(%s): %v", name, err)
		}
	}
}

// runRepl is modeled on the teacher's Env.Loop: a simple readline prompt
// that evaluates one call expression per line until EOF.
func runRepl(sigs map[string]*params.Signature) {
	if err := readline.Init(readline.Opts{Name: "paramdemo", ExpandHistory: true}); err != nil {
		log.Error.Printf("readline.Init: %v", err)
	}
	fmt.Println("paramdemo> try f(1, 2, c=5) or g(1, 2, z=3)")
	for {
		line, err := readline.Readline("paramdemo> ")
		if err != nil {
			fmt.Printf("\nreadline: %v\n", err)
			return
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if err := readline.AddHistory(trimmed); err != nil {
			log.Error.Printf("readline.AddHistory: %v", err)
		}
		evalAndPrint(sigs, trimmed)
	}
}

func runOnce(sigs map[string]*params.Signature, args []string) {
	for _, a := range args {
		evalAndPrint(sigs, a)
	}
}

// limitedBindGroup binds many calls concurrently, capped at NumCPU*2
// in-flight goroutines, the same shape as gql/builtin_flatten.go's
// limitedWorkerGroup.
type limitedBindGroup struct {
	sem *semaphore.Weighted
	wg  sync.WaitGroup
	err errors.Once
}

func newLimitedBindGroup() *limitedBindGroup {
	return &limitedBindGroup{sem: semaphore.NewWeighted(int64(runtime.NumCPU() * 2))}
}

func (g *limitedBindGroup) Go(ctx context.Context, callback func() error) {
	g.wg.Add(1)
	if err := g.sem.Acquire(ctx, 1); err != nil {
		log.Panic(err)
	}
	go func() {
		defer g.wg.Done()
		defer g.sem.Release(1)
		g.err.Set(callback())
	}()
}

func (g *limitedBindGroup) Wait() error {
	g.wg.Wait()
	return g.err.Err()
}

// runBatch re-binds each commandline call `count` times concurrently. It
// exists to exercise the concurrency-safety claim SPEC_FULL makes for a
// frozen Signature: every goroutine shares the same *params.Signature
// values with no synchronization of its own.
func runBatch(sigs map[string]*params.Signature, args []string, count int) {
	ctx := context.Background()
	group := newLimitedBindGroup()
	for i := 0; i < count; i++ {
		for _, a := range args {
			a := a
			group.Go(ctx, func() error {
				pc, err := parseCall(a)
				if err != nil {
					return err
				}
				sig, ok := sigs[pc.funcName]
				if !ok {
					return fmt.Errorf("paramdemo: no such function %q", pc.funcName)
				}
				slots := make([]value.Value, sig.Len())
				c := call.New(pc.raw, pc.argsVal, pc.hasArgs, pc.kwargsVal, pc.hasKwargs)
				return params.Bind(sig, c, slots, value.NewHeap())
			})
		}
	}
	if err := group.Wait(); err != nil {
		log.Error.Printf("batch bind failed: %v", err)
		return
	}
	fmt.Printf("bound %d calls across %d call expressions cleanly\n", count*len(args), len(args))
}

func evalAndPrint(sigs map[string]*params.Signature, line string) {
	pc, err := parseCall(line)
	if err != nil {
		fmt.Printf("parse error: %v\n", err)
		return
	}
	sig, ok := sigs[pc.funcName]
	if !ok {
		fmt.Printf("no such function %q (try f or g)\n", pc.funcName)
		return
	}
	slots := make([]value.Value, sig.Len())
	c := call.New(pc.raw, pc.argsVal, pc.hasArgs, pc.kwargsVal, pc.hasKwargs)
	if err := params.Bind(sig, c, slots, value.NewHeap()); err != nil {
		fmt.Printf("bind error: %v\n", err)
		return
	}
	for i, v := range slots {
		if !v.Valid() {
			fmt.Printf("  %s = <unfilled>\n", sig.ParamName(i).Str())
			continue
		}
		fmt.Printf("  %s = %s\n", sig.ParamName(i).Str(), v.String())
	}
}
