package filters

import (
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/soypat/filterer"
)

// Pipeline applies a sequence of named filters in order, feeding each
// filter's output into the next. A Pipeline is itself a [filterer.Filter]
// and may be registered and nested in other pipelines.
//
// Apply does not modify the pipeline, so a built pipeline may be applied
// concurrently. AddFilter must not be called concurrently with Apply.
type Pipeline struct {
	reg     *Registry
	names   []string
	filters []filterer.Filter
}

var _ filterer.Filter = (*Pipeline)(nil)

// NewPipeline returns an empty pipeline that resolves filter names in reg.
// A pipeline with a nil registry knows no filters.
func NewPipeline(reg *Registry) *Pipeline {
	return &Pipeline{reg: reg}
}

// AddFilter looks up name in the pipeline's registry and appends the filter.
// If name is not registered the pipeline is left unchanged and an error
// matching [filterer.ErrUnknownFilter] is returned.
//
// A pipeline must not end up containing itself, directly or through nested
// pipelines: applying it would recurse without end.
func (p *Pipeline) AddFilter(name string) error {
	log := filterer.Logger().WithFields(logrus.Fields{
		"function": "Pipeline.AddFilter",
		"filter":   name,
	})
	f, err := p.reg.Lookup(name)
	if err != nil {
		log.WithError(err).Debug("filter lookup failed")
		return err
	}
	p.names = append(p.names, name)
	p.filters = append(p.filters, f)
	log.WithField("stages", len(p.filters)).Debug("filter added")
	return nil
}

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.filters) }

// Names returns the stage names in application order.
func (p *Pipeline) Names() []string { return slices.Clone(p.names) }

// Controls implements [filterer.Filter]. It returns the controls of all stages in order.
func (p *Pipeline) Controls() []filterer.Control {
	var ctrls []filterer.Control
	for _, f := range p.filters {
		ctrls = append(ctrls, f.Controls()...)
	}
	return ctrls
}

// Apply implements [filterer.Filter]. An empty pipeline returns a copy of src.
// The first failing stage aborts the pipeline and its error is returned as is.
func (p *Pipeline) Apply(src *filterer.Buffer) (*filterer.Buffer, error) {
	if src == nil {
		return nil, filterer.ErrEmptyImage
	}
	log := filterer.Logger().WithFields(logrus.Fields{
		"function": "Pipeline.Apply",
		"stages":   len(p.filters),
		"width":    src.Width(),
		"height":   src.Height(),
	})
	if len(p.filters) == 0 {
		log.Debug("empty pipeline, returning copy")
		return src.Clone(), nil
	}
	current := src
	for i, f := range p.filters {
		stage := log.WithFields(logrus.Fields{"stage": i, "filter": p.names[i]})
		stage.Debug("applying filter")
		result, err := f.Apply(current)
		if err != nil {
			stage.WithError(err).Error("filter failed")
			return nil, err
		}
		current = result
	}
	return current, nil
}
