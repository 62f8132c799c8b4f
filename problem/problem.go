package problem

// New validates and assembles a ProblemData from an explicit client table
// and distance matrix. Client 0 must be the depot with zero demand, and
// len(clients) must match dist.Order(). The depot's service duration and
// time window are not checked beyond the rules applied to every client.
//
// Complexity: O(n) validation over the client table; the matrix itself is
// taken by reference and not re-validated element-wise.
func New(clients []Client, dist *DistanceMatrix, nbVehicles, vehicleCapacity int) (*ProblemData, error) {
	if len(clients) == 0 {
		return nil, ErrNoClients
	}
	if dist.Order() != len(clients) {
		return nil, ErrDimensionMismatch
	}
	if clients[0].Demand != 0 {
		return nil, ErrDepotDemand
	}
	if nbVehicles <= 0 {
		return nil, ErrNonPositiveVehicles
	}
	if vehicleCapacity <= 0 {
		return nil, ErrNonPositiveCapacity
	}

	var i int
	var c Client
	for i = 0; i < len(clients); i++ {
		c = clients[i]
		if c.Demand < 0 {
			return nil, ErrNegativeDemand
		}
		if c.ServiceDuration < 0 {
			return nil, ErrNegativeService
		}
		if c.Earliest > c.Latest {
			return nil, ErrBadWindow
		}
	}

	return &ProblemData{
		clients:  clients,
		dist:     dist,
		nbVeh:    nbVehicles,
		capacity: vehicleCapacity,
	}, nil
}

// NumClients returns the number of entries in the client table, including
// the depot (client 0). The number of non-depot customers is NumClients()-1.
func (p *ProblemData) NumClients() int { return len(p.clients) }

// Client returns a copy of the client table entry at index idx. Index 0 is
// the depot.
func (p *ProblemData) Client(idx int) Client { return p.clients[idx] }

// NbVehicles returns the size of the homogeneous fleet.
func (p *ProblemData) NbVehicles() int { return p.nbVeh }

// VehicleCapacity returns the shared per-vehicle capacity.
func (p *ProblemData) VehicleCapacity() int { return p.capacity }

// Dist returns the travel distance/time from client i to client j.
// Hot path: no bounds checking, no error return — indices come from a
// validated ProblemData, so an out-of-range call is a programmer error,
// not recoverable caller input.
func (p *ProblemData) Dist(i, j int) int64 {
	return p.dist.at(i, j)
}

// DistSeq returns the sum of consecutive pairwise distances along ids, i.e.
// dist(ids[0],ids[1]) + dist(ids[1],ids[2]) + ... . Returns 0 for fewer than
// two ids.
func (p *ProblemData) DistSeq(ids ...int) int64 {
	if len(ids) < 2 {
		return 0
	}

	var total int64
	var k int
	for k = 1; k < len(ids); k++ {
		total += p.dist.at(ids[k-1], ids[k])
	}

	return total
}

// DistanceMatrix exposes the underlying matrix, e.g. for neighbor-list
// construction in package localsearch.
func (p *ProblemData) DistanceMatrix() *DistanceMatrix { return p.dist }
