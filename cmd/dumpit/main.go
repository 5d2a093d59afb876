package main

import (
	"encoding/binary"
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"

	"github.com/meridianfx/meridian/pkg/datasource/replay"
	"github.com/meridianfx/meridian/pkg/exchange/tardis"
)

func dumpIt(csvPath string, binFile *os.File) error {
	csvFile, err := os.Open(csvPath)
	if err != nil {
		return err
	}
	defer func(csvFile *os.File) {
		_ = csvFile.Close()
	}(csvFile)

	reader := csv.NewReader(csvFile)
	var packed []replay.PackedTrade

	// Skip header
	_, err = reader.Read()
	if err != nil {
		log.Fatal(err)
	}

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}

		record, err := tardis.ParseTradeRecord(fields)
		if err != nil {
			log.Printf("skipping malformed row: %v", err)
			continue
		}

		packed = append(packed, replay.PackedTrade{
			TimestampUs:      record.TimestampUs,
			LocalTimestampUs: record.LocalTimestampUs,
			Price:            record.Price,
			Amount:           record.Amount,
			Side:             replay.PackSide(record.Side),
		})
	}

	return binary.Write(binFile, binary.LittleEndian, packed)
}

func main() {
	csvPath := flag.String("csv", "", "path to a tardis trades csv file")
	binPath := flag.String("bin", "trades.bin", "output path for the packed file")
	flag.Parse()

	if *csvPath == "" {
		log.Fatal("missing -csv argument")
	}

	binFile, err := os.Create(*binPath)
	if err != nil {
		log.Fatal(err)
	}
	defer func(binFile *os.File) {
		_ = binFile.Close()
	}(binFile)

	if err := dumpIt(*csvPath, binFile); err != nil {
		log.Fatal(err)
	}
}
