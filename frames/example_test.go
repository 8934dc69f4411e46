package frames_test

import (
	"fmt"

	"github.com/blast-analytics-marketing/blast-developer-tools/frames"
)

func ExampleDiff() {
	staged := []string{"orders", "sessions", "users", "orders"}
	loaded := []string{"sessions"}

	fmt.Println(frames.Diff(staged, loaded))
	// Output:
	// [orders users]
}

func ExampleSchema_Columns() {
	schema := frames.Schema{
		"id":         frames.Int,
		"amount":     frames.Float,
		"tax":        frames.Float,
		"created_at": frames.Timestamp,
	}

	fmt.Println(schema.Columns(frames.Float))
	// Output:
	// [amount tax]
}
