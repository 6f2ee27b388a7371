package main

import (
	"fmt"
	"math"

	"github.com/tuannh982/keyed-collections/collections"

	log "github.com/sirupsen/logrus"
)

func main() {
	logger := log.WithFields(log.Fields{"demo": "keyed-collections"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Level = log.InfoLevel

	m := collections.NewOrderedMap[string, int]()
	v, _ := collections.GetOrInsert(m, "a", 1)
	logger.Infof("getOrInsert a=1 -> %d", v)
	v, _ = collections.GetOrInsert(m, "a", 2)
	logger.Infof("getOrInsert a=2 -> %d (stored value kept)", v)

	squares := collections.NewFloatMap[float64, float64]()
	for _, k := range []float64{2, 3, 2, math.Copysign(0, -1), 0} {
		v, err := collections.GetOrInsertComputed(squares, k, func(k float64) (float64, error) {
			logger.Infof("computing square of %v", k)
			return k * k, nil
		})
		if err != nil {
			logger.WithError(err).Fatal("compute failed")
		}
		logger.Infof("square(%v) = %v", k, v)
	}
	logger.Infof("squares keys in insertion order: %v", squares.Keys())

	counters := collections.NewSyncMap[string, int]()
	for _, word := range []string{"to", "be", "or", "not", "to", "be"} {
		n, _ := counters.GetOrInsert(word, 0)
		_ = counters.Put(word, n+1)
	}
	counters.Range(func(k string, v int) bool {
		fmt.Printf("%s\t%d\n", k, v)
		return true
	})
}
