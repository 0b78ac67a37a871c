package aggregator

import (
	"math"
	"sort"
	"sync"

	"github.com/jdanford/polars/utils/cast"
)

// AggregateType names one aggregation kernel.
type AggregateType string

const (
	Sum      AggregateType = "sum"
	Count    AggregateType = "count"
	Mean     AggregateType = "mean"
	Min      AggregateType = "min"
	Max      AggregateType = "max"
	Median   AggregateType = "median"
	Quantile AggregateType = "quantile"
	StdDev   AggregateType = "stddev"
	NUnique  AggregateType = "n_unique"
	First    AggregateType = "first"
	Last     AggregateType = "last"
	Collect  AggregateType = "collect"
)

// AggregatorFunction is one incremental aggregation kernel: values are
// fed through Add and reduced by Result. New returns a fresh kernel of
// the same kind for the next group.
type AggregatorFunction interface {
	New() AggregatorFunction
	Add(value interface{})
	Result() interface{}
}

type SumAggregator struct {
	value float64
}

func (s *SumAggregator) New() AggregatorFunction {
	return &SumAggregator{}
}

func (s *SumAggregator) Add(v interface{}) {
	s.value += cast.ToFloat64(v, 0)
}

func (s *SumAggregator) Result() interface{} {
	return s.value
}

type CountAggregator struct {
	count int
}

func (c *CountAggregator) New() AggregatorFunction {
	return &CountAggregator{}
}

func (c *CountAggregator) Add(_ interface{}) {
	c.count++
}

func (c *CountAggregator) Result() interface{} {
	return int64(c.count)
}

type MeanAggregator struct {
	sum   float64
	count int
}

func (a *MeanAggregator) New() AggregatorFunction {
	return &MeanAggregator{}
}

func (a *MeanAggregator) Add(v interface{}) {
	a.sum += cast.ToFloat64(v, 0)
	a.count++
}

func (a *MeanAggregator) Result() interface{} {
	if a.count == 0 {
		return 0.0
	}
	return a.sum / float64(a.count)
}

type MinAggregator struct {
	value float64
	first bool
}

func (m *MinAggregator) New() AggregatorFunction {
	return &MinAggregator{first: true}
}

func (m *MinAggregator) Add(v interface{}) {
	vv := cast.ToFloat64(v, math.MaxFloat64)
	if m.first || vv < m.value {
		m.value = vv
		m.first = false
	}
}

func (m *MinAggregator) Result() interface{} {
	return m.value
}

type MaxAggregator struct {
	value float64
	first bool
}

func (m *MaxAggregator) New() AggregatorFunction {
	return &MaxAggregator{first: true}
}

func (m *MaxAggregator) Add(v interface{}) {
	vv := cast.ToFloat64(v, -math.MaxFloat64)
	if m.first || vv > m.value {
		m.value = vv
		m.first = false
	}
}

func (m *MaxAggregator) Result() interface{} {
	return m.value
}

type MedianAggregator struct {
	values []float64
}

func (m *MedianAggregator) New() AggregatorFunction {
	return &MedianAggregator{}
}

func (m *MedianAggregator) Add(v interface{}) {
	m.values = append(m.values, cast.ToFloat64(v, 0))
}

func (m *MedianAggregator) Result() interface{} {
	if len(m.values) == 0 {
		return 0.0
	}
	sort.Float64s(m.values)
	n := len(m.values)
	if n%2 == 1 {
		return m.values[n/2]
	}
	return (m.values[n/2-1] + m.values[n/2]) / 2
}

// QuantileAggregator computes the q-quantile with nearest-rank
// interpolation.
type QuantileAggregator struct {
	values []float64
	q      float64
}

func NewQuantileAggregator(q float64) *QuantileAggregator {
	return &QuantileAggregator{q: q}
}

func (p *QuantileAggregator) New() AggregatorFunction {
	return &QuantileAggregator{q: p.q}
}

func (p *QuantileAggregator) Add(v interface{}) {
	p.values = append(p.values, cast.ToFloat64(v, 0))
}

func (p *QuantileAggregator) Result() interface{} {
	if len(p.values) == 0 {
		return 0.0
	}
	sort.Float64s(p.values)
	idx := int(math.Round(p.q * float64(len(p.values)-1)))
	return p.values[idx]
}

// StdDevAggregator computes the sample standard deviation.
type StdDevAggregator struct {
	values []float64
}

func (s *StdDevAggregator) New() AggregatorFunction {
	return &StdDevAggregator{}
}

func (s *StdDevAggregator) Add(v interface{}) {
	s.values = append(s.values, cast.ToFloat64(v, 0))
}

func (s *StdDevAggregator) Result() interface{} {
	if len(s.values) < 2 {
		return 0.0
	}
	avg := calculateAverage(s.values)
	var sum float64
	for _, v := range s.values {
		sum += (v - avg) * (v - avg)
	}
	return math.Sqrt(sum / float64(len(s.values)-1))
}

type NUniqueAggregator struct {
	seen map[string]struct{}
}

func (n *NUniqueAggregator) New() AggregatorFunction {
	return &NUniqueAggregator{}
}

func (n *NUniqueAggregator) Add(v interface{}) {
	if n.seen == nil {
		n.seen = make(map[string]struct{})
	}
	n.seen[encodeScalar(v)] = struct{}{}
}

func (n *NUniqueAggregator) Result() interface{} {
	return int64(len(n.seen))
}

type FirstAggregator struct {
	value interface{}
	set   bool
}

func (f *FirstAggregator) New() AggregatorFunction {
	return &FirstAggregator{}
}

func (f *FirstAggregator) Add(v interface{}) {
	if !f.set {
		f.value = v
		f.set = true
	}
}

func (f *FirstAggregator) Result() interface{} {
	return f.value
}

type LastAggregator struct {
	value interface{}
}

func (l *LastAggregator) New() AggregatorFunction {
	return &LastAggregator{}
}

func (l *LastAggregator) Add(v interface{}) {
	l.value = v
}

func (l *LastAggregator) Result() interface{} {
	return l.value
}

// CollectAggregator gathers the raw group values into a list.
type CollectAggregator struct {
	values []interface{}
}

func (c *CollectAggregator) New() AggregatorFunction {
	return &CollectAggregator{}
}

func (c *CollectAggregator) Add(v interface{}) {
	c.values = append(c.values, v)
}

func (c *CollectAggregator) Result() interface{} {
	return c.values
}

var (
	aggregatorRegistry = make(map[string]func() AggregatorFunction)
	registryMutex      sync.RWMutex
)

// Register adds a custom kernel to the global registry, shadowing a
// builtin of the same name.
func Register(name string, constructor func() AggregatorFunction) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	aggregatorRegistry[name] = constructor
}

// Unregister removes a custom kernel, restoring any shadowed builtin.
func Unregister(name string) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	delete(aggregatorRegistry, name)
}

// CreateBuiltinAggregator returns a fresh kernel for the given type.
func CreateBuiltinAggregator(aggType AggregateType) (AggregatorFunction, bool) {
	registryMutex.RLock()
	constructor, exists := aggregatorRegistry[string(aggType)]
	registryMutex.RUnlock()
	if exists {
		return constructor(), true
	}

	switch aggType {
	case Sum:
		return &SumAggregator{}, true
	case Count:
		return &CountAggregator{}, true
	case Mean:
		return &MeanAggregator{}, true
	case Min:
		return &MinAggregator{first: true}, true
	case Max:
		return &MaxAggregator{first: true}, true
	case Median:
		return &MedianAggregator{}, true
	case StdDev:
		return &StdDevAggregator{}, true
	case NUnique:
		return &NUniqueAggregator{}, true
	case First:
		return &FirstAggregator{}, true
	case Last:
		return &LastAggregator{}, true
	case Collect:
		return &CollectAggregator{}, true
	default:
		return nil, false
	}
}

// isNumericAggregator reports whether the kernel consumes numeric
// input; evaluation converts values up front for these so that a
// non-numeric column fails loudly instead of summing zeros.
func isNumericAggregator(aggType AggregateType) bool {
	switch aggType {
	case Sum, Mean, Min, Max, Median, Quantile, StdDev:
		return true
	default:
		return false
	}
}

func calculateAverage(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
