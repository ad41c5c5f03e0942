// Command fakestudent prints generated student records as JSON lines.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"fakeuser/internal/generator"
	"fakeuser/internal/logging"
)

func main() {
	seed := pflag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	count := pflag.IntP("count", "n", 1, "number of students to print")
	verbose := pflag.BoolP("verbose", "v", false, "log the seed in use")
	pflag.Parse()

	level := "warn"
	if *verbose {
		level = "info"
	}
	logger, _ := logging.New(level)

	gen := generator.New(*seed)
	logger.Infof("using seed %d", gen.Seed())

	if err := writeStudents(os.Stdout, gen, *count); err != nil {
		logger.Fatalf("write students: %v", err)
	}
}

func writeStudents(w io.Writer, gen *generator.Generator, count int) error {
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}
	enc := json.NewEncoder(w)
	for i := 0; i < count; i++ {
		if err := enc.Encode(gen.GenerateStudent()); err != nil {
			return err
		}
	}
	return nil
}
