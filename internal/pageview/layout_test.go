package pageview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeFor(t *testing.T) {
	tests := []struct {
		index int
		total int
		want  Shape
	}{
		{index: 0, total: 0, want: ShapeNone},
		{index: 0, total: 1, want: ShapeSingle},
		{index: 0, total: 2, want: ShapeLeading},
		{index: 1, total: 2, want: ShapeLeading},
		{index: 0, total: 5, want: ShapeLeading},
		{index: 2, total: 3, want: ShapeTrailing},
		{index: 4, total: 5, want: ShapeTrailing},
		{index: 1, total: 3, want: ShapeInterior},
		{index: 2, total: 5, want: ShapeInterior},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d of %d", tt.index, tt.total), func(t *testing.T) {
			assert.Equal(t, tt.want, ShapeFor(tt.index, tt.total))
		})
	}
}

func TestConstraintsFollowWindow(t *testing.T) {
	w := NewWindow().Forward()

	got := Constraints(ShapeInterior, w)
	assert.Equal(t, []Constraint{
		{Kind: PinLeading, Slot: w.Slot(RolePrev)},
		{Kind: Adjacent, Slot: w.Slot(RolePrev), Next: w.Slot(RoleMain)},
		{Kind: Adjacent, Slot: w.Slot(RoleMain), Next: w.Slot(RoleNext)},
		{Kind: ContentWidth, Multiplier: 3},
	}, got)

	got = Constraints(ShapeTrailing, w)
	assert.Equal(t, []Constraint{
		{Kind: PinLeading, Slot: w.Slot(RoleMain)},
		{Kind: Adjacent, Slot: w.Slot(RoleMain), Next: w.Slot(RoleNext)},
		{Kind: ContentWidth, Multiplier: 2},
	}, got)

	got = Constraints(ShapeSingle, w)
	assert.Equal(t, []Constraint{
		{Kind: PinLeading, Slot: w.Slot(RolePrev)},
		{Kind: ContentWidth, Multiplier: 1},
	}, got)

	assert.Empty(t, Constraints(ShapeNone, w))
}

func TestBaseConstraintsCoverEverySlot(t *testing.T) {
	base := BaseConstraints()
	require.Len(t, base, 7)
	assert.Contains(t, base, Constraint{Kind: SlotWidth, Slot: 2})
	assert.Contains(t, base, Constraint{Kind: ContentHeight, Multiplier: 1})
}

type engineOp struct {
	activate bool
	set      []Constraint
}

type recordingEngine struct {
	ops []engineOp
	err error
}

func (e *recordingEngine) Activate(cs []Constraint) error {
	e.ops = append(e.ops, engineOp{activate: true, set: cs})
	return e.err
}

func (e *recordingEngine) Deactivate(cs []Constraint) {
	e.ops = append(e.ops, engineOp{set: cs})
}

func TestReconcilerDeactivatesBeforeActivating(t *testing.T) {
	engine := &recordingEngine{}
	r := NewReconciler(engine)
	w := NewWindow()

	require.NoError(t, r.Install())
	require.NoError(t, r.Update(2, 5, w))
	require.NoError(t, r.Update(0, 5, w))

	require.Len(t, engine.ops, 4)
	assert.True(t, engine.ops[0].activate)
	assert.Equal(t, BaseConstraints(), engine.ops[0].set)
	assert.True(t, engine.ops[1].activate)
	assert.Equal(t, Constraints(ShapeInterior, w), engine.ops[1].set)
	assert.False(t, engine.ops[2].activate)
	assert.Equal(t, Constraints(ShapeInterior, w), engine.ops[2].set)
	assert.True(t, engine.ops[3].activate)
	assert.Equal(t, Constraints(ShapeLeading, w), engine.ops[3].set)
	assert.Equal(t, ShapeLeading, r.Shape())
}

func TestReconcilerWithoutPagesClearsLayout(t *testing.T) {
	engine := &recordingEngine{}
	r := NewReconciler(engine)

	require.NoError(t, r.Update(1, 3, NewWindow()))
	require.NoError(t, r.Update(0, 0, NewWindow()))

	assert.Empty(t, r.Active())
	assert.Equal(t, ShapeNone, r.Shape())
	require.Len(t, engine.ops, 2)
	assert.False(t, engine.ops[1].activate)
}

func TestReconcilerWrapsEngineErrors(t *testing.T) {
	engine := &recordingEngine{err: fmt.Errorf("boom")}
	r := NewReconciler(engine)

	err := r.Update(1, 4, NewWindow())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interior")
	assert.Empty(t, r.Active())
}

func TestControllerAppliesShapeOnLayout(t *testing.T) {
	engine := &recordingEngine{}
	c := New[testPage](WithLayoutEngine(engine))
	c.AttachDataSource(newFakeSource(4))
	require.True(t, c.NeedsLayout())

	c.Layout()
	assert.False(t, c.NeedsLayout())
	assert.Equal(t, ShapeLeading, c.Shape())

	c.SetIndex(3)
	c.Layout()
	assert.Equal(t, ShapeTrailing, c.Shape())
	assert.Equal(t, Constraints(ShapeTrailing, c.Window()), c.Constraints())
}
