package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
)

type denomination struct {
	Ident  string
	Code   string
	Name   string
	Unit   string
	Scrap  string
	Weapon string
}

// Quoted reports whether the denomination is quoted with its own
// scrap and weapon fractions.
func (d denomination) Quoted() bool {
	return d.Scrap != "" && d.Weapon != ""
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "denomination", "denomination_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of denomination objects.
	// The order of the records defines the order of the constants.
	denoms, err := convertDataToDenominations(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the denomination objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "denomination", "denomination_data.tmpl"), denoms)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("denomination_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

func convertDataToDenominations(data [][]string) ([]denomination, error) {
	denoms := []denomination{}
	seen := map[string]bool{}
	for _, rec := range data {
		d := denomination{
			Ident:  rec[0],
			Code:   rec[1],
			Name:   rec[2],
			Unit:   rec[3],
			Scrap:  rec[4],
			Weapon: rec[5],
		}
		// Codes and names share one lookup table
		words := []string{d.Code}
		if d.Name != d.Code {
			words = append(words, d.Name)
		}
		for _, word := range words {
			if seen[word] {
				return nil, fmt.Errorf("duplicate denomination word %q", word)
			}
			seen[word] = true
		}
		denoms = append(denoms, d)
	}
	return denoms, nil
}

func generateGoCode(filename string, denoms []denomination) ([]byte, error) {
	// Create a new template object from the template file
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, denoms)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}
