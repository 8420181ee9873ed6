// Command csvrepair replaces line breaks embedded in CSV fields
// with the marker " <br> ", keeping the separator and character
// encoding detected from the input file.
//
// Usage:
//
//	csvrepair [inputFile [outputFile]]
//
// Without an outputFile the result is written next to the input file
// with "_processed" appended to its name. Without any arguments the
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

	"github.com/domonda/go-csvrepair"
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
		output = csvrepair.DefaultOutputFile(input)
	}

	result, err := csvrepair.ConvertFile(context.Background(), input, output, nil)
	if err != nil {
		fatal(err)
	}

	fmt.Println("Converted", input)
	fmt.Println("  Encoding:                ", result.Format.Encoding)
	fmt.Printf("  Separator:                %q\n", result.Format.Separator)
	fmt.Println("  Rows:                    ", result.NumRows)
	fmt.Println("  Line breaks replaced:    ", result.NumLineBreaksReplaced)
	fmt.Println("  Separators replaced:     ", result.NumSeparatorsReplaced)
	fmt.Println("  Trailing markers removed:", result.NumTrailingMarkersRemoved)
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
