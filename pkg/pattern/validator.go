package pattern

// Validate runs whole-pattern checks that need sibling context: catch-all
// placement, duplicate names, alias collisions, and optional/catch-all
// ambiguity. It is pure, and results come back in document order.
//
// Validation runs even when the parse reported errors, so a pattern author
// sees syntactic and semantic problems together in one pass.
func Validate(p *Pattern) []*SemanticError {
	v := &validator{
		names:   make(map[string]bool),
		aliases: make(map[string]bool),
	}
	for _, seg := range p.Segments {
		switch seg.Kind {
		case SegmentLiteral:
			v.literal(seg)
		case SegmentParameter:
			v.parameter(seg)
		case SegmentOption:
			v.option(seg)
		case SegmentEndOfOptions:
			v.afterSeparator = true
		}
	}
	return v.errs
}

type validator struct {
	errs    []*SemanticError
	names   map[string]bool
	aliases map[string]bool

	// catchAll is the catch-all segment already seen, if any.
	catchAll *Segment

	// placementFlagged caps catch-all placement reporting at one error.
	placementFlagged bool

	// prevPositionalOptional tracks whether the immediately preceding
	// positional segment was an optional parameter.
	prevPositionalOptional bool

	// sawOptional is the first optional positional parameter seen.
	sawOptional *Segment

	afterSeparator bool
}

func (v *validator) record(kind SemanticErrorKind, seg *Segment, name string) {
	v.errs = append(v.errs, &SemanticError{
		Kind:   kind,
		Offset: seg.Offset,
		Length: seg.Length,
		Name:   name,
	})
}

func (v *validator) literal(seg *Segment) {
	if v.catchAll != nil && !v.placementFlagged {
		v.record(SemanticCatchAllNotLast, seg, "")
		v.placementFlagged = true
	}
	v.prevPositionalOptional = false
}

func (v *validator) parameter(seg *Segment) {
	param := seg.Param

	if v.catchAll != nil {
		if !v.placementFlagged {
			v.record(SemanticParameterAfterCatchAll, seg, param.Name)
			v.placementFlagged = true
		}
		return
	}

	v.checkName(seg, param.Name)

	if param.CatchAll {
		v.catchAll = seg
		if v.sawOptional != nil {
			v.record(SemanticOptionalWithCatchAll, seg, param.Name)
		}
		v.prevPositionalOptional = false
		return
	}

	if param.Optional {
		if v.prevPositionalOptional {
			v.record(SemanticConsecutiveOptionals, seg, param.Name)
		}
		if v.sawOptional == nil {
			v.sawOptional = seg
		}
		v.prevPositionalOptional = true
		return
	}

	// Required parameter after an earlier optional one.
	if v.sawOptional != nil {
		v.record(SemanticOptionalBeforeRequired, seg, param.Name)
	}
	v.prevPositionalOptional = false
}

func (v *validator) option(seg *Segment) {
	opt := seg.Option

	if v.afterSeparator {
		v.record(SemanticOptionAfterEndOfOptions, seg, seg.BindingName())
	}

	v.checkName(seg, seg.BindingName())

	if opt.Short != "" {
		if v.aliases[opt.Short] {
			v.record(SemanticDuplicateAlias, seg, opt.Short)
		}
		v.aliases[opt.Short] = true
	}
}

// checkName enforces binding-name uniqueness across positional parameters,
// option value parameters, and flag names.
func (v *validator) checkName(seg *Segment, name string) {
	if name == "" {
		return
	}
	if v.names[name] {
		v.record(SemanticDuplicateName, seg, name)
		return
	}
	v.names[name] = true
}
