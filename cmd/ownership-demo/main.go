// ownership-demo walks the ownership-convention catalogue and exercises
// every container operation, verifying the documented transfer contracts
// at runtime. It exits non-zero if any contract is violated.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/smnsjas/go-ownership/container"
	"github.com/smnsjas/go-ownership/convention"
	"github.com/smnsjas/go-ownership/holder"
	"github.com/smnsjas/go-ownership/refcount"
)

// Scenario is a single contract check.
type Scenario struct {
	Name        string
	Description string
	Run         func() error
}

func main() {
	listFlag := flag.Bool("list", false, "print the convention catalogue and exit")
	debugFlag := flag.Bool("debug", false, "enable container debug logging to stderr")
	flag.Parse()

	if *listFlag {
		for _, spec := range convention.Catalogue() {
			fmt.Println(spec)
		}
		return
	}

	scenarios := buildScenarios(*debugFlag)

	passed := 0
	for _, sc := range scenarios {
		fmt.Printf("TEST: %s\n", sc.Name)
		fmt.Printf("DESC: %s\n", sc.Description)
		if err := sc.Run(); err != nil {
			fmt.Printf("❌ FAILED: %v\n\n", err)
			continue
		}
		fmt.Printf("✅ PASSED\n\n")
		passed++
	}

	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Printf("RESULTS: %d/%d passed\n", passed, len(scenarios))
	if passed != len(scenarios) {
		os.Exit(1)
	}
}

func newContainer(prefix string, debug bool) *container.Container {
	c := container.New(prefix)
	if debug {
		c.EnableDebugLogging()
	}
	return c
}

func buildScenarios(debug bool) []Scenario {
	return []Scenario{
		{
			Name:        "AddPrefix",
			Description: "in/out parameter mutated in place, new length returned",
			Run: func() error {
				c := newContainer("foo_", debug)
				defer c.Close()

				msg := "bar"
				n := c.AddPrefix(&msg)
				if msg != "foo_bar" || n != 7 {
					return fmt.Errorf("got %q (len %d), want \"foo_bar\" (len 7)", msg, n)
				}
				return nil
			},
		},
		{
			Name:        "ValueCopy",
			Description: "by-value round trip yields an equal but independent holder",
			Run: func() error {
				c := newContainer("p_", debug)
				defer c.Close()

				h := holder.New("datum")
				c.SetValue(h)
				got := c.Value()
				if !got.Equal(h) {
					return fmt.Errorf("copy not equal: %q vs %q", got.Datum(), h.Datum())
				}
				if got.ID() == h.ID() {
					return fmt.Errorf("copy shares storage identity %s", got.ID())
				}
				return nil
			},
		},
		{
			Name:        "ExclusiveTransfer",
			Description: "replacing the owned instance releases the previous one exactly once",
			Run: func() error {
				c := newContainer("p_", debug)
				defer c.Close()

				a := holder.New("a")
				b := holder.New("b")
				if err := c.SetOwned(&a); err != nil {
					return err
				}
				if err := c.SetOwned(&b); err != nil {
					return err
				}
				if !a.Released() {
					return fmt.Errorf("previous instance not released")
				}
				if b.Released() {
					return fmt.Errorf("current instance released prematurely")
				}

				got, ok := c.TakeOwned()
				if !ok || got != &b {
					return fmt.Errorf("TakeOwned did not return the owned instance")
				}
				if _, ok := c.TakeOwned(); ok {
					return fmt.Errorf("slot not empty after TakeOwned")
				}
				return nil
			},
		},
		{
			Name:        "BorrowedLifetime",
			Description: "the container never releases a borrowed reference",
			Run: func() error {
				c := newContainer("p_", debug)

				h := holder.New("borrowed")
				c.SetBorrowed(&h)
				if _, ok := c.Borrowed(); !ok {
					return fmt.Errorf("borrowed slot reported absent")
				}
				if err := c.Close(); err != nil {
					return err
				}
				if h.Released() {
					return fmt.Errorf("container released a borrowed reference")
				}
				return nil
			},
		},
		{
			Name:        "RefCountDiscipline",
			Description: "acquire increments, peek does not, release at zero frees once",
			Run: func() error {
				c := newContainer("p_", debug)
				defer c.Close()

				v := refcount.New("shared")
				if err := c.SetRefCountedShared(v); err != nil {
					return err
				}
				if v.Count() != 2 {
					return fmt.Errorf("count after shared set = %d, want 2", v.Count())
				}

				if _, ok := c.PeekRefCounted(); !ok {
					return fmt.Errorf("peek reported absent")
				}
				if v.Count() != 2 {
					return fmt.Errorf("peek changed the count to %d", v.Count())
				}

				acquired, ok := c.AcquireRefCounted()
				if !ok {
					return fmt.Errorf("acquire reported absent")
				}
				if acquired.Count() != 3 {
					return fmt.Errorf("count after acquire = %d, want 3", acquired.Count())
				}

				if err := acquired.Unref(); err != nil {
					return err
				}
				if err := v.Unref(); err != nil {
					return err
				}
				if v.Released() {
					return fmt.Errorf("value released while the container still holds a reference")
				}
				return nil
			},
		},
		{
			Name:        "UnderflowChecked",
			Description: "releasing past zero is a checked failure, not a double free",
			Run: func() error {
				v := refcount.New("v")
				if err := v.Unref(); err != nil {
					return err
				}
				if err := v.Unref(); err != refcount.ErrUnderflow {
					return fmt.Errorf("expected ErrUnderflow, got %v", err)
				}
				return nil
			},
		},
		{
			Name:        "HolderBoundary",
			Description: "holder wrapper: shared on the way in, caller-owned on the way out",
			Run: func() error {
				c := newContainer("p_", debug)
				defer c.Close()

				v := refcount.New("wrapped")
				if err := c.SetRefCountedHolder(refcount.Holder{Value: v}); err != nil {
					return err
				}
				h, ok := c.RefCountedHolder()
				if !ok {
					return fmt.Errorf("holder reported absent")
				}
				if h.Value.Count() != 3 {
					return fmt.Errorf("count = %d, want 3 (caller, container, returned holder)", h.Value.Count())
				}
				return h.Value.Unref()
			},
		},
		{
			Name:        "CatalogueCoverage",
			Description: "every container operation exercised above appears in the catalogue",
			Run: func() error {
				for _, op := range []string{
					"AddPrefix", "SetValue", "Value", "SetOwned", "TakeOwned",
					"SetBorrowed", "Borrowed", "AcquireRefCounted", "PeekRefCounted",
					"SetRefCountedTransfer", "SetRefCountedShared",
					"SetRefCountedHolder", "RefCountedHolder",
				} {
					if _, ok := convention.Lookup(op); !ok {
						return fmt.Errorf("operation %s missing from catalogue", op)
					}
				}
				return nil
			},
		},
	}
}
