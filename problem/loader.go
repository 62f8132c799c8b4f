package problem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FromFile parses this package's plain-text instance format:
//
//	VEHICLES <n>
//	CAPACITY <cap>
//	DIMENSION <d>
//	<id> <x> <y> <demand> <earliest> <latest> <service>
//	...
//
// Header fields may appear in any order, one per line, each a keyword
// followed by a single integer. DIMENSION counts the client table rows
// including the depot (row with id 0). Distances are derived as the
// Euclidean metric rounded to the nearest integer; Close is not run
// automatically — callers that need a metric-closed matrix call it
// explicitly after loading.
//
// Complexity: O(d^2) time and space, d = DIMENSION (the distance matrix
// dominates).
func FromFile(path string) (*ProblemData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("problem: opening instance file: %w", err)
	}
	defer f.Close()

	return parseInstance(f)
}

func parseInstance(r io.Reader) (*ProblemData, error) {
	var (
		vehicles, capacity, dimension int
		haveVehicles, haveCapacity    bool
		haveDimension                 bool
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var line string
	var lineNo int
	var fields []string
	var pendingRow bool

	// Stage 1: header. Consume keyword lines until the first non-blank line
	// that is not a header keyword; that line starts the client table.
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields = strings.Fields(line)

		switch strings.ToUpper(fields[0]) {
		case "VEHICLES":
			if len(fields) != 2 {
				return nil, fmt.Errorf("problem: line %d: VEHICLES expects one value: %w", lineNo, ErrMalformedInstance)
			}
			vehVal, err := strconv.Atoi(fields[1])
			if err != nil || vehVal <= 0 {
				return nil, fmt.Errorf("problem: line %d: bad VEHICLES value: %w", lineNo, ErrMalformedInstance)
			}
			vehicles = vehVal
			haveVehicles = true
		case "CAPACITY":
			if len(fields) != 2 {
				return nil, fmt.Errorf("problem: line %d: CAPACITY expects one value: %w", lineNo, ErrMalformedInstance)
			}
			capVal, err := strconv.Atoi(fields[1])
			if err != nil || capVal <= 0 {
				return nil, fmt.Errorf("problem: line %d: bad CAPACITY value: %w", lineNo, ErrMalformedInstance)
			}
			capacity = capVal
			haveCapacity = true
		case "DIMENSION":
			if len(fields) != 2 {
				return nil, fmt.Errorf("problem: line %d: DIMENSION expects one value: %w", lineNo, ErrMalformedInstance)
			}
			dimVal, err := strconv.Atoi(fields[1])
			if err != nil || dimVal <= 0 {
				return nil, fmt.Errorf("problem: line %d: bad DIMENSION value: %w", lineNo, ErrMalformedInstance)
			}
			dimension = dimVal
			haveDimension = true
		default:
			// First non-header line: it's the start of the client table.
			pendingRow = true
			goto table
		}
	}

table:
	if !haveVehicles || !haveCapacity || !haveDimension {
		return nil, fmt.Errorf("problem: missing VEHICLES/CAPACITY/DIMENSION header: %w", ErrMalformedInstance)
	}

	clients := make([]Client, dimension)
	seen := make([]bool, dimension)
	var rowsRead int

	// The line that broke out of the header loop, if any, is the first
	// client row; reparse it alongside the rest.
	if pendingRow {
		c, id, err := parseClientRow(fields, lineNo)
		if err != nil {
			return nil, err
		}
		if id < 0 || id >= dimension {
			return nil, fmt.Errorf("problem: line %d: client id %d out of range: %w", lineNo, id, ErrMalformedInstance)
		}
		if seen[id] {
			return nil, fmt.Errorf("problem: line %d: duplicate client id %d: %w", lineNo, id, ErrMalformedInstance)
		}
		clients[id] = c
		seen[id] = true
		rowsRead++
	}

	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields = strings.Fields(line)
		c, id, err := parseClientRow(fields, lineNo)
		if err != nil {
			return nil, err
		}
		if id < 0 || id >= dimension {
			return nil, fmt.Errorf("problem: line %d: client id %d out of range: %w", lineNo, id, ErrMalformedInstance)
		}
		if seen[id] {
			return nil, fmt.Errorf("problem: line %d: duplicate client id %d: %w", lineNo, id, ErrMalformedInstance)
		}
		clients[id] = c
		seen[id] = true
		rowsRead++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("problem: reading instance file: %w", err)
	}
	if rowsRead != dimension {
		return nil, fmt.Errorf("problem: expected %d client rows, read %d: %w", dimension, rowsRead, ErrMalformedInstance)
	}

	dist := NewEuclideanDistanceMatrix(clients)

	return New(clients, dist, vehicles, capacity)
}

// parseClientRow parses "<id> <x> <y> <demand> <earliest> <latest> <service>".
func parseClientRow(fields []string, lineNo int) (Client, int, error) {
	if len(fields) != 7 {
		return Client{}, 0, fmt.Errorf("problem: line %d: expected 7 fields, got %d: %w", lineNo, len(fields), ErrMalformedInstance)
	}

	// id, demand, earliest, latest are integer fields; x and y are floats
	// (Solomon-style instances commonly give fractional coordinates) and are
	// parsed separately via ParseFloat below.
	intFields := []int{0, 3, 4, 5}
	vals := make(map[int]int, len(intFields))
	var idx, v int
	var err error
	for _, idx = range intFields {
		v, err = strconv.Atoi(fields[idx])
		if err != nil {
			return Client{}, 0, fmt.Errorf("problem: line %d: bad integer field %q: %w", lineNo, fields[idx], ErrMalformedInstance)
		}
		vals[idx] = v
	}
	id := vals[0]
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Client{}, 0, fmt.Errorf("problem: line %d: bad x coordinate %q: %w", lineNo, fields[1], ErrMalformedInstance)
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Client{}, 0, fmt.Errorf("problem: line %d: bad y coordinate %q: %w", lineNo, fields[2], ErrMalformedInstance)
	}
	demand := vals[3]
	earliest := vals[4]
	latest := vals[5]
	service, err := strconv.Atoi(fields[6])
	if err != nil {
		return Client{}, 0, fmt.Errorf("problem: line %d: bad service duration %q: %w", lineNo, fields[6], ErrMalformedInstance)
	}

	return Client{
		X:               x,
		Y:               y,
		Demand:          demand,
		ServiceDuration: service,
		Earliest:        earliest,
		Latest:          latest,
	}, id, nil
}
