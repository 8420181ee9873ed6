// Command csvimportprep prepares a CSV file for the document import:
// it maps translated header names onto the canonical import columns,
// appends missing columns, and clears the ID column.
//
// Usage:
//
//	csvimportprep [inputFile [outputFile]]
//
// Without an outputFile the result is written next to the input file
// with "_optimized" appended to its name. Without any arguments the
// file paths are prompted for on standard input.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ungerik/go-fs"

	"github.com/domonda/go-csvrepair/importprep"
)

func main() {
	if len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "usage: %s [inputFile [outputFile]]\n", os.Args[0])
		os.Exit(2)
	}

	var (
		input  fs.File
		output fs.File
		err    error
	)
	switch len(os.Args) {
	case 1:
		input, output, err = promptFiles()
		if err != nil {
			fatal(err)
		}
	case 2:
		input = fs.File(os.Args[1])
	case 3:
		input = fs.File(os.Args[1])
		output = fs.File(os.Args[2])
	}
	if output == "" {
		output = importprep.DefaultOutputFile(input)
	}

	result, err := importprep.PrepareFile(context.Background(), input, output)
	if err != nil {
		fatal(err)
	}

	fmt.Println("Prepared", input)
	fmt.Println("  Encoding:         ", result.Format.Encoding)
	fmt.Printf("  Separator:         %q\n", result.Format.Separator)
	fmt.Println("  Rows:             ", result.NumRows)
	if len(result.MissingColumns) > 0 {
		fmt.Println("  Appended columns: ", strings.Join(result.MissingColumns, ", "))
	}
	if result.NumIDValuesCleared > 0 {
		fmt.Println("  ID values cleared:", result.NumIDValuesCleared)
	}
	fmt.Println("Saved as", output)
}

func promptFiles() (input, output fs.File, err error) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Path of the CSV file: ")
	inputPath, err := readPath(reader)
	if err != nil {
		return "", "", err
	}
	if inputPath == "" {
		return "", "", errors.New("no input file path entered")
	}

	fmt.Print("Output file (enter for default): ")
	outputPath, err := readPath(reader)
	if err != nil {
		return "", "", err
	}

	return fs.File(inputPath), fs.File(outputPath), nil
}

func readPath(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(line), `"'`), nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
