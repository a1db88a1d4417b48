package formatting_test

import (
	"errors"
	"testing"

	"github.com/freightdock/drayman/pkg/formatting"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestParse(t *testing.T) {
	t.Run("direct JSON", func(t *testing.T) {
		got, err := formatting.Parse[payload](`{"name": "bol", "count": 3}`)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if got.Name != "bol" || got.Count != 3 {
			t.Errorf("got %+v, want {bol 3}", got)
		}
	})

	t.Run("json code fence", func(t *testing.T) {
		content := "Here is the result:\n```json\n{\"name\": \"pod\", \"count\": 1}\n```"
		got, err := formatting.Parse[payload](content)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if got.Name != "pod" {
			t.Errorf("Name = %q, want pod", got.Name)
		}
	})

	t.Run("bare code fence", func(t *testing.T) {
		content := "```\n{\"name\": \"invoice\", \"count\": 7}\n```"
		got, err := formatting.Parse[payload](content)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if got.Count != 7 {
			t.Errorf("Count = %d, want 7", got.Count)
		}
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		got, err := formatting.Parse[payload]("  {\"name\": \"x\"}  ")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if got.Name != "x" {
			t.Errorf("Name = %q, want x", got.Name)
		}
	})

	t.Run("unparseable content", func(t *testing.T) {
		_, err := formatting.Parse[payload]("not json at all")
		if !errors.Is(err, formatting.ErrParseFailed) {
			t.Fatalf("error = %v, want ErrParseFailed", err)
		}
	})

	t.Run("fence with invalid json", func(t *testing.T) {
		_, err := formatting.Parse[payload]("```json\n{broken\n```")
		if !errors.Is(err, formatting.ErrParseFailed) {
			t.Fatalf("error = %v, want ErrParseFailed", err)
		}
	})
}
