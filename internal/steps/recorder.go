package steps

// Option decorates a step at emission time.
type Option func(*Step)

func WithComparing(i, j int) Option {
	return func(s *Step) { s.Comparing = &Pair{i, j} }
}

func WithSwapping(i, j int) Option {
	return func(s *Step) { s.Swapping = &Pair{i, j} }
}

// WithMove records that the element at from travels to to.
func WithMove(from, to int) Option {
	return func(s *Step) { s.SwapPositions = &Move{From: from, To: to} }
}

// Recorder holds the working array of a generator and appends a fresh deep
// copy of it to the sequence on every Emit.
type Recorder struct {
	work []Element
	seq  Sequence
}

// NewRecorder copies values into a default-state working array.
func NewRecorder(values []int) *Recorder {
	return &Recorder{
		work: FromValues(values),
		seq:  make(Sequence, 0, 8*len(values)+2),
	}
}

func (r *Recorder) Len() int { return len(r.work) }

func (r *Recorder) Value(i int) int { return r.work[i].Value }

func (r *Recorder) State(i int) ElementState { return r.work[i].State }

// Values returns a copy of the working values.
func (r *Recorder) Values() []int { return Values(r.work) }

// Swap exchanges two slots; each element keeps its state.
func (r *Recorder) Swap(i, j int) {
	r.work[i], r.work[j] = r.work[j], r.work[i]
}

// Rotate moves the element at from to position to (to < from), shifting the
// elements in between one slot right.
func (r *Recorder) Rotate(from, to int) {
	if to >= from {
		return
	}
	moved := r.work[from]
	copy(r.work[to+1:from+1], r.work[to:from])
	r.work[to] = moved
}

// Reorder replaces the working values, resetting every state to default.
func (r *Recorder) Reorder(values []int) {
	r.work = FromValues(values)
}

// Mark sets the state of the given positions.
func (r *Recorder) Mark(state ElementState, idx ...int) {
	for _, i := range idx {
		r.work[i].State = state
	}
}

// MarkRange sets the state of positions lo..hi inclusive.
func (r *Recorder) MarkRange(state ElementState, lo, hi int) {
	for i := lo; i <= hi; i++ {
		r.work[i].State = state
	}
}

func (r *Recorder) MarkAll(state ElementState) {
	r.MarkRange(state, 0, len(r.work)-1)
}

// Emit snapshots the working array into a new step.
func (r *Recorder) Emit(kind Kind, description string, opts ...Option) {
	snap := cloneElements(r.work)
	for i := range snap {
		snap[i].Index = i
	}
	step := Step{Array: snap, Description: description, Kind: kind}
	for _, opt := range opts {
		opt(&step)
	}
	r.seq = append(r.seq, step)
}

// Sequence returns the recorded steps. The recorder must not be used after.
func (r *Recorder) Sequence() Sequence {
	return r.seq
}
