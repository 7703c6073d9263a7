package model

import (
	"fmt"
	"time"
)

// Dataset is the immutable, index-aligned pair of records and their parsed
// times. Index i of Records, Times and rendered points always refer to the
// same ascent.
type Dataset struct {
	records []Record
	times   []time.Duration
}

// NewDataset validates records and parses every Time. It fails on the first
// record whose time cannot be parsed.
func NewDataset(records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	ds := &Dataset{
		records: make([]Record, len(records)),
		times:   make([]time.Duration, len(records)),
	}
	copy(ds.records, records)
	for i, r := range ds.records {
		d, err := ParseTime(r.Time)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, r.Name, err)
		}
		ds.times[i] = d
	}
	return ds, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Record returns the record at index i.
func (d *Dataset) Record(i int) Record { return d.records[i] }

// Time returns the parsed time at index i.
func (d *Dataset) Time(i int) time.Duration { return d.times[i] }

// Records returns a copy of the records in input order.
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// DopingCount returns how many records carry an allegation.
func (d *Dataset) DopingCount() int {
	n := 0
	for _, r := range d.records {
		if r.HasDoping() {
			n++
		}
	}
	return n
}
