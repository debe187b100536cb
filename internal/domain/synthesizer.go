// Package domain contains magic square synthesis, verification and the CLI workflows built on them.
package domain

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"loshu.dev/pkg/loshu/internal/domain/generators"
	m "loshu.dev/pkg/loshu/internal/model"
)

// Synthesizer builds verified magic squares. Implementations hold no state
// between calls and are safe for concurrent use.
type Synthesizer interface {
	// Generate returns a verified square of order n.
	Generate(n int, opts ...GenerateOption) (m.Square, error)
	// Describe returns the square of order n wrapped in a persistable report.
	Describe(n int, opts ...GenerateOption) (m.Report, error)
}

// GenerateOption customizes a single synthesis.
type GenerateOption func(*generateConfig)

type generateConfig struct {
	variant m.Variant
	method  m.Method
}

// WithVariant applies one of the eight symmetries to the constructed square.
func WithVariant(v m.Variant) GenerateOption {
	return func(c *generateConfig) {
		c.variant = v
	}
}

// WithMethod selects the construction. An empty method uses the class default.
func WithMethod(method m.Method) GenerateOption {
	return func(c *generateConfig) {
		c.method = method
	}
}

// construction is one generator and the order class it applies to.
type construction struct {
	class m.OrderClass
	build func(n int) m.Matrix
}

var constructions = map[m.Method]construction{
	m.MethodSiamese:         {class: m.ClassOdd, build: generators.Siamese},
	m.MethodBlockComplement: {class: m.ClassDoublyEven, build: generators.BlockComplement},
	m.MethodQuadrant:        {class: m.ClassSinglyEven, build: generators.Quadrant},
	m.MethodLUX:             {class: m.ClassSinglyEven, build: generators.LUX},
}

var defaultMethods = map[m.OrderClass]m.Method{
	m.ClassOdd:        m.MethodSiamese,
	m.ClassDoublyEven: m.MethodBlockComplement,
	m.ClassSinglyEven: m.MethodQuadrant,
}

// DefaultMethod returns the construction used for class when none is requested.
func DefaultMethod(class m.OrderClass) m.Method {
	return defaultMethods[class]
}

// MethodsFor lists every construction that builds class, sorted by name.
func MethodsFor(class m.OrderClass) []m.Method {
	methods := make([]m.Method, 0, 2)

	for method, c := range constructions {
		if c.class == class {
			methods = append(methods, method)
		}
	}

	sort.Slice(methods, func(i, j int) bool {
		return methods[i] < methods[j]
	})

	return methods
}

// ParseMethod validates a method name. The empty string is accepted and means "class default".
func ParseMethod(s string) (m.Method, error) {
	if s == "" {
		return "", nil
	}

	if _, ok := constructions[m.Method(s)]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
	}

	return m.Method(s), nil
}

type synthesizer struct {
	constructions map[m.Method]construction
	now           func() time.Time
	newID         func() string
}

// NewSynthesizer creates a Synthesizer using the classical constructions.
func NewSynthesizer() Synthesizer {
	return &synthesizer{
		constructions: constructions,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

func (s *synthesizer) Generate(n int, opts ...GenerateOption) (m.Square, error) {
	square, _, _, err := s.synthesize(n, opts)

	return square, err
}

func (s *synthesizer) Describe(n int, opts ...GenerateOption) (m.Report, error) {
	square, class, cfg, err := s.synthesize(n, opts)
	if err != nil {
		return m.Report{}, err
	}

	return m.Report{
		ID:          s.newID(),
		Order:       n,
		Class:       class,
		Method:      cfg.method,
		Variant:     cfg.variant,
		Planet:      m.PlanetFor(n),
		Square:      square,
		GeneratedAt: s.now().UTC(),
	}, nil
}

func (s *synthesizer) synthesize(n int, opts []GenerateOption) (m.Square, m.OrderClass, generateConfig, error) {
	class, err := Classify(n)
	if err != nil {
		return m.Square{}, "", generateConfig{}, err
	}

	cfg, err := s.resolveConfig(class, opts)
	if err != nil {
		return m.Square{}, "", generateConfig{}, err
	}

	mx := s.constructions[cfg.method].build(n)
	if cfg.variant != m.VariantIdentity {
		mx = cfg.variant.Apply(mx)
	}

	properties, err := checkConstruction(n, cfg.method, mx)
	if err != nil {
		slog.Error("Construction broke an invariant", "order", n, "method", cfg.method, "variant", cfg.variant, "error", err)
		return m.Square{}, "", generateConfig{}, err
	}

	slog.Debug("Synthesized square", "order", n, "class", class, "method", cfg.method, "variant", cfg.variant)

	return m.Square{
		Dimension:     n,
		MagicConstant: m.MagicConstant(n),
		Matrix:        mx,
		Properties:    properties,
	}, class, cfg, nil
}

func (s *synthesizer) resolveConfig(class m.OrderClass, opts []GenerateOption) (generateConfig, error) {
	var cfg generateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.variant.Valid() {
		return generateConfig{}, fmt.Errorf("%w: %d", ErrUnknownVariant, int(cfg.variant))
	}

	if cfg.method == "" {
		cfg.method = DefaultMethod(class)
	}

	c, ok := s.constructions[cfg.method]
	if !ok || c.class != class {
		return generateConfig{}, fmt.Errorf("%w: %q does not build %s orders", ErrUnsupportedMethod, cfg.method, class)
	}

	return cfg, nil
}

// checkConstruction re-validates a freshly built matrix: it must be a
// bijective fill of 1..n², its first row must sum to the formula constant and
// it must be perfect.
func checkConstruction(n int, method m.Method, mx m.Matrix) (m.Properties, error) {
	if len(mx) != n {
		return m.Properties{}, &InvariantError{Order: n, Method: string(method), Detail: fmt.Sprintf("built %d rows", len(mx))}
	}

	analysis, err := Analyze(mx)
	if err != nil {
		return m.Properties{}, &InvariantError{Order: n, Method: string(method), Detail: err.Error()}
	}

	if detail := missingOrRepeated(mx); detail != "" {
		return m.Properties{}, &InvariantError{Order: n, Method: string(method), Detail: detail}
	}

	if analysis.RowSums[0] != m.MagicConstant(n) {
		return m.Properties{}, &InvariantError{
			Order:  n,
			Method: string(method),
			Detail: fmt.Sprintf("first row sums to %d, constant is %d", analysis.RowSums[0], m.MagicConstant(n)),
		}
	}

	if !analysis.Properties.IsPerfect {
		return m.Properties{}, &InvariantError{Order: n, Method: string(method), Detail: "rows, columns or diagonals do not balance"}
	}

	return analysis.Properties, nil
}
