package main

import (
	"encoding/json"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/meridianfx/meridian/pkg/datasource/replay"
	"github.com/meridianfx/meridian/pkg/dbg"
	"github.com/meridianfx/meridian/pkg/exchange/tardis"
	"github.com/meridianfx/meridian/pkg/utility"
)

func main() {
	binPath := flag.String("bin", "trades.bin", "path to a packed trades file")
	exchange := flag.String("exchange", "binance-futures", "tardis exchange the file was recorded from")
	symbol := flag.String("symbol", "", "raw exchange symbol")
	pricePrecision := flag.Uint("price-precision", 2, "instrument price precision")
	sizePrecision := flag.Uint("size-precision", 0, "instrument size precision")
	flag.Parse()

	logger := dbg.NewProdLogger()
	defer func() {
		_ = logger.Sync()
	}()

	if *symbol == "" {
		logger.Fatal("missing -symbol argument")
	}

	logger.Info("replay starting",
		zap.String("eid", utility.GetExecutionID().String()),
		zap.String("bin", *binPath),
		zap.String("exchange", *exchange),
		zap.String("symbol", *symbol))

	source := replay.NewSource[replay.PackedTrade](*binPath)
	if err := source.Open(); err != nil {
		logger.Fatal("unable to open source", zap.Error(err))
	}
	defer source.Close()

	encoder := json.NewEncoder(os.Stdout)
	normalized := 0

	err := source.ForEach(func(index int64, packed *replay.PackedTrade) error {
		record := packed.Record(tardis.Exchange(*exchange), *symbol)

		trade, err := record.Normalize(uint8(*pricePrecision), uint8(*sizePrecision))
		if err != nil {
			logger.Warn("rejecting record", zap.Int64("index", index), zap.Error(err))
			return nil
		}

		normalized++
		return encoder.Encode(trade)
	})
	if err != nil {
		logger.Fatal("replay failed", zap.Error(err))
	}

	logger.Info("replay finished", zap.Int("normalized", normalized))
}
