package trajectory

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dynctl/internal/algebra"
	"github.com/san-kum/dynctl/internal/control"
	"github.com/san-kum/dynctl/internal/dynamo"
)

type call struct {
	current, previous, next int
}

// recorder wraps a matcher and logs every invocation.
type recorder struct {
	calls []call
	match Matcher[int]
}

func (r *recorder) matcher() Matcher[int] {
	return func(current, previous, next int) bool {
		r.calls = append(r.calls, call{current, previous, next})
		return r.match(current, previous, next)
	}
}

var _ = Describe("Trajectory", func() {
	It("rejects an empty point list", func() {
		_, err := New[int](nil)
		Expect(err).To(MatchError(dynamo.ErrInvalidArgument))

		_, err = NewTracked([]int{}, Exact[int](), false)
		Expect(err).To(MatchError(dynamo.ErrInvalidArgument))
	})

	It("is not affected by later changes to the source slice", func() {
		src := []int{1, 2, 3}
		tr, err := New(src)
		Expect(err).NotTo(HaveOccurred())

		src[0] = 42
		Expect(tr.Points()).To(Equal([]int{1, 2, 3}))

		pts := tr.Points()
		pts[1] = 42
		Expect(tr.At(1)).To(Equal(2))
		Expect(tr.Len()).To(Equal(3))
	})
})

var _ = Describe("Tracked", func() {
	const a, b, c = 10, 20, 30

	var (
		rec *recorder
		tt  *Tracked[int]
	)

	newTracked := func(loop bool) {
		rec = &recorder{match: Exact[int]()}
		var err error
		tt, err = NewTracked([]int{a, b, c}, rec.matcher(), loop)
		Expect(err).NotTo(HaveOccurred())
	}

	Context("not looping", func() {
		BeforeEach(func() { newTracked(false) })

		It("starts on the first point with no previous point", func() {
			Expect(tt.NextPointIndex()).To(Equal(0))
			Expect(tt.NextPoint()).To(Equal(a))
			Expect(tt.Completed()).To(BeFalse())
			_, ok := tt.PreviousPoint()
			Expect(ok).To(BeFalse())
		})

		It("walks A, B, C and then completes", func() {
			Expect(tt.Update(a)).To(BeTrue())
			Expect(tt.NextPointIndex()).To(Equal(1))
			Expect(tt.Completed()).To(BeFalse())

			Expect(tt.Update(b)).To(BeTrue())
			Expect(tt.NextPointIndex()).To(Equal(2))
			Expect(tt.Completed()).To(BeFalse())

			Expect(tt.Update(c)).To(BeTrue())
			Expect(tt.Completed()).To(BeTrue())
			Expect(tt.NextPointIndex()).To(Equal(2))
			Expect(tt.NextPoint()).To(Equal(c))
		})

		It("never consults the matcher once completed", func() {
			tt.Update(a)
			tt.Update(b)
			tt.Update(c)
			n := len(rec.calls)

			Expect(tt.Update(c)).To(BeFalse())
			Expect(tt.Update(a)).To(BeFalse())
			Expect(rec.calls).To(HaveLen(n))
			Expect(tt.Completed()).To(BeTrue())
		})

		It("records the first state as previous point even without a match", func() {
			Expect(tt.Update(5)).To(BeFalse())
			p, ok := tt.PreviousPoint()
			Expect(ok).To(BeTrue())
			Expect(p).To(Equal(5))

			Expect(tt.Update(7)).To(BeFalse())
			p, _ = tt.PreviousPoint()
			Expect(p).To(Equal(5))
			Expect(tt.NextPointIndex()).To(Equal(0))
		})

		It("tracks the most recently reached waypoint", func() {
			tt.Update(5)
			tt.Update(a)
			p, _ := tt.PreviousPoint()
			Expect(p).To(Equal(a))
			tt.Update(b)
			p, _ = tt.PreviousPoint()
			Expect(p).To(Equal(b))
		})

		It("calls the matcher with current, previous and next", func() {
			tt.Update(5)
			tt.Update(a)
			tt.Update(6)
			Expect(rec.calls).To(Equal([]call{
				{current: 5, previous: 5, next: a},
				{current: a, previous: 5, next: a},
				{current: 6, previous: a, next: b},
			}))
		})
	})

	Context("looping", func() {
		BeforeEach(func() { newTracked(true) })

		It("wraps to the first point and never completes", func() {
			for lap := 0; lap < 3; lap++ {
				for i, p := range []int{a, b, c} {
					Expect(tt.Update(p)).To(BeTrue())
					Expect(tt.NextPointIndex()).To(Equal((i + 1) % 3))
					Expect(tt.Completed()).To(BeFalse())
				}
			}
			Expect(tt.Loop()).To(BeTrue())
		})
	})

	It("completes immediately on a single point trajectory", func() {
		single, err := NewTracked([]int{a}, Exact[int](), false)
		Expect(err).NotTo(HaveOccurred())
		Expect(single.Update(a)).To(BeTrue())
		Expect(single.Completed()).To(BeTrue())
		Expect(single.NextPoint()).To(Equal(a))
	})
})

var _ = Describe("Tracker", func() {
	var (
		tt       *Tracked[int]
		tracker  *Tracker[int, int]
		reached  []int
		complete int
	)

	BeforeEach(func() {
		var err error
		tt, err = NewTracked([]int{1, 2, 3}, Exact[int](), false)
		Expect(err).NotTo(HaveOccurred())
		tracker = NewTracker(dynamo.NewController(func(state, target int) int { return target - state }), tt)
		reached, complete = nil, 0
		tracker.OnPointReached(func(p int) { reached = append(reached, p) })
		tracker.OnCompleted(func() { complete++ })
	})

	It("steers toward the next point without advancing", func() {
		Expect(tracker.Control(0)).To(Equal(1))
		Expect(reached).To(BeEmpty())
	})

	It("steers toward the following point after a match", func() {
		u, ev := tracker.Step(1)
		Expect(u).To(Equal(1))
		Expect(ev.Kind).To(Equal(PointReached))
		Expect(ev.Point).To(Equal(1))
		Expect(reached).To(Equal([]int{1}))
	})

	It("notifies completion once", func() {
		tracker.Control(1)
		tracker.Control(2)
		u, ev := tracker.Step(3)
		Expect(ev.Kind).To(Equal(Completed))
		Expect(ev.Point).To(Equal(3))
		Expect(u).To(Equal(0))

		_, ev = tracker.Step(3)
		Expect(ev.Kind).To(Equal(None))
		Expect(reached).To(Equal([]int{1, 2, 3}))
		Expect(complete).To(Equal(1))
	})

	It("supports several subscribers", func() {
		var other []int
		tracker.OnPointReached(func(p int) { other = append(other, p) })
		tracker.Control(1)
		Expect(other).To(Equal([]int{1}))
		Expect(reached).To(Equal([]int{1}))
	})
})

var _ = Describe("ErrorTracker", func() {
	It("exposes the error toward the current waypoint", func() {
		tt, err := NewTracked([]algebra.Float{5, 10}, WithinRadius[algebra.Float](0.5), false)
		Expect(err).NotTo(HaveOccurred())
		tracker := NewErrorTracker[algebra.Float, algebra.Float](
			control.NewError(func(e algebra.Float) algebra.Float { return e }), tt)

		Expect(tracker.Control(0)).To(Equal(algebra.Float(5)))
		Expect(tracker.Error()).To(Equal(algebra.Float(5)))

		tracker.Control(4.8)
		Expect(tracker.Error()).To(BeNumerically("~", 5.2, 1e-9))
		Expect(tracker.Trajectory().NextPointIndex()).To(Equal(1))
	})
})

var _ = Describe("Matchers", func() {
	v := algebra.V3

	It("WithinRadius", func() {
		m := WithinRadius[algebra.Vec3](1)
		Expect(m(v(0.5, 0, 0), v(9, 9, 9), v(0, 0, 0))).To(BeTrue())
		Expect(m(v(1.5, 0, 0), v(9, 9, 9), v(0, 0, 0))).To(BeFalse())
	})

	It("PassedPlane", func() {
		m := PassedPlane[algebra.Vec3]()
		prev, next := v(0, 0, 0), v(10, 0, 0)
		Expect(m(v(9, 5, 0), prev, next)).To(BeFalse())
		Expect(m(v(10.1, -3, 2), prev, next)).To(BeTrue())
		Expect(m(v(3, 3, 3), next, next)).To(BeTrue())
	})

	It("Project projects the state", func() {
		type pose struct {
			pos   algebra.Vec3
			label string
		}
		m := Project(func(p pose) algebra.Vec3 { return p.pos }, WithinRadius[algebra.Vec3](0.1))
		Expect(m(pose{v(1, 1, 1), "a"}, pose{}, pose{v(1, 1, 1.05), "b"})).To(BeTrue())
	})
})
