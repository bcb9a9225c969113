package playback_test

import (
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/playback"
	"github.com/san-kum/sortvis/internal/steps"
)

var _ = Describe("Controller", func() {
	var (
		sched *fakeScheduler
		ctrl  *playback.Controller
		seq   steps.Sequence
	)

	BeforeEach(func() {
		sched = newFakeScheduler()
		ctrl = playback.New(sched)
		seq = algorithms.NewBubbleSort().Generate(algorithms.Input{Values: []int{5, 3, 8, 1}})
		ctrl.Load(seq)
	})

	Describe("Load", func() {
		It("starts idle at the first step", func() {
			Expect(ctrl.Cursor()).To(Equal(0))
			Expect(ctrl.Playing()).To(BeFalse())
			Expect(ctrl.Phase()).To(Equal(playback.PhaseIdle))
			Expect(ctrl.Len()).To(Equal(len(seq)))
		})

		It("resets cursor and playback when a new sequence arrives", func() {
			ctrl.Play()
			ctrl.Seek(5)
			token, _ := ctrl.Pending()

			ctrl.Load(algorithms.NewLinearSearch().Generate(algorithms.Input{Values: []int{1, 2}, Target: 2}))

			Expect(ctrl.Cursor()).To(Equal(0))
			Expect(ctrl.Playing()).To(BeFalse())
			Expect(sched.cancelled).To(ContainElement(token))
			Expect(sched.live).To(BeEmpty())
		})
	})

	Describe("Play", func() {
		It("schedules exactly one advance with the step delay", func() {
			Expect(ctrl.Play()).To(BeTrue())
			Expect(ctrl.Phase()).To(Equal(playback.PhasePlaying))
			Expect(sched.live).To(HaveLen(1))
			Expect(sched.last().delay).To(Equal(800 * time.Millisecond))
		})

		It("refuses to play an empty sequence", func() {
			ctrl.Load(nil)
			Expect(ctrl.Play()).To(BeFalse())
			Expect(sched.live).To(BeEmpty())
		})

		It("does not issue a second token when already playing", func() {
			ctrl.Play()
			ctrl.Play()
			Expect(sched.history).To(HaveLen(1))
		})

		It("waits longer on swap steps", func() {
			ctrl.Seek(2)
			Expect(seq[2].IsSwap()).To(BeTrue())
			ctrl.Play()
			Expect(sched.last().delay).To(Equal(1000 * time.Millisecond))
		})
	})

	Describe("auto-advance", func() {
		It("advances one step per fired token", func() {
			ctrl.Play()
			Expect(sched.fire(ctrl)).To(BeTrue())
			Expect(ctrl.Cursor()).To(Equal(1))
			Expect(sched.fire(ctrl)).To(BeTrue())
			Expect(ctrl.Cursor()).To(Equal(2))
			Expect(sched.live).To(HaveLen(1))
		})

		It("ignores stale tokens", func() {
			ctrl.Play()
			stale, _ := ctrl.Pending()
			ctrl.StepForward()

			Expect(ctrl.Fire(stale)).To(BeFalse())
			Expect(ctrl.Cursor()).To(Equal(1))
			Expect(ctrl.Fire(0)).To(BeFalse())
		})

		It("keeps at most one advance outstanding across commands", func() {
			ctrl.Play()
			ctrl.StepForward()
			ctrl.StepForward()
			Expect(ctrl.SetSpeed(2)).To(Succeed())
			ctrl.StepBackward()

			Expect(sched.live).To(HaveLen(1))
			token, ok := ctrl.Pending()
			Expect(ok).To(BeTrue())
			Expect(sched.live).To(HaveKey(token))
		})

		It("plays to the end and stops after the grace delay", func() {
			ctrl.Play()
			for ctrl.Cursor() < ctrl.Len()-1 {
				Expect(sched.fire(ctrl)).To(BeTrue())
			}
			Expect(ctrl.Playing()).To(BeTrue())
			Expect(sched.last().delay).To(Equal(playback.StopGrace))

			Expect(sched.fire(ctrl)).To(BeTrue())
			Expect(ctrl.Playing()).To(BeFalse())
			Expect(ctrl.Cursor()).To(Equal(ctrl.Len() - 1))
			Expect(ctrl.Phase()).To(Equal(playback.PhaseIdle))
			Expect(sched.live).To(BeEmpty())
		})

		It("visits every step exactly once", func() {
			visited := []int{ctrl.Cursor()}
			ctrl.Play()
			for ctrl.Playing() {
				before := ctrl.Cursor()
				sched.fire(ctrl)
				if ctrl.Cursor() != before {
					visited = append(visited, ctrl.Cursor())
				}
			}
			Expect(visited).To(HaveLen(len(seq)))
			for i, v := range visited {
				Expect(v).To(Equal(i))
			}
		})
	})

	Describe("SetSpeed", func() {
		It("rescales the next delay without moving the cursor", func() {
			ctrl.Play()
			sched.fire(ctrl)
			Expect(ctrl.Cursor()).To(Equal(1))

			Expect(ctrl.SetSpeed(2)).To(Succeed())
			Expect(ctrl.Cursor()).To(Equal(1))
			Expect(sched.live).To(HaveLen(1))
			Expect(sched.last().delay).To(Equal(400 * time.Millisecond))

			sched.fire(ctrl)
			Expect(ctrl.Cursor()).To(Equal(2))
		})

		It("never goes below the minimum delay", func() {
			Expect(ctrl.SetSpeed(3)).To(Succeed())
			ctrl.Play()
			Expect(sched.last().delay).To(Equal(playback.MinDelay))
		})

		It("rejects speeds outside the enumerated set", func() {
			Expect(ctrl.SetSpeed(4)).To(MatchError(playback.ErrInvalidSpeed))
			Expect(ctrl.Speed()).To(Equal(playback.DefaultSpeed))
		})

		It("does not reschedule while paused", func() {
			Expect(ctrl.SetSpeed(0.5)).To(Succeed())
			Expect(sched.history).To(BeEmpty())
		})
	})

	Describe("stepping", func() {
		It("treats stepping back from the first step as a no-op", func() {
			Expect(ctrl.StepBackward()).To(BeFalse())
			Expect(ctrl.Cursor()).To(Equal(0))
		})

		It("treats stepping forward from the last step as a no-op", func() {
			ctrl.Seek(ctrl.Len() - 1)
			Expect(ctrl.StepForward()).To(BeFalse())
			Expect(ctrl.Cursor()).To(Equal(ctrl.Len() - 1))
			Expect(ctrl.AtEnd()).To(BeTrue())
		})

		It("reports paused between the ends", func() {
			ctrl.StepForward()
			Expect(ctrl.Phase()).To(Equal(playback.PhasePaused))
		})

		It("keeps the cursor in range under random commands", func() {
			rng := rand.New(rand.NewSource(99))
			for i := 0; i < 2000; i++ {
				switch rng.Intn(6) {
				case 0:
					ctrl.StepForward()
				case 1:
					ctrl.StepBackward()
				case 2:
					ctrl.Reset()
				case 3:
					ctrl.Toggle()
				case 4:
					sched.fire(ctrl)
				case 5:
					ctrl.Seek(rng.Intn(3*ctrl.Len()) - ctrl.Len())
				}
				Expect(ctrl.Cursor()).To(BeNumerically(">=", 0))
				Expect(ctrl.Cursor()).To(BeNumerically("<=", ctrl.Len()-1))
				Expect(len(sched.live)).To(BeNumerically("<=", 1))
			}
		})
	})

	Describe("Reset", func() {
		It("returns to the first step and stops playing", func() {
			ctrl.Play()
			sched.fire(ctrl)
			sched.fire(ctrl)
			ctrl.Reset()

			Expect(ctrl.Cursor()).To(Equal(0))
			Expect(ctrl.Playing()).To(BeFalse())
			Expect(sched.live).To(BeEmpty())
		})
	})

	Describe("Snapshot", func() {
		It("describes the current step and progress", func() {
			ctrl.Seek(4)
			v := ctrl.Snapshot()

			Expect(v.Cursor).To(Equal(4))
			Expect(v.Total).To(Equal(len(seq)))
			Expect(v.Step.Description).To(Equal(seq[4].Description))
			Expect(v.Percent).To(BeNumerically("~", 5.0/float64(len(seq))*100, 1e-9))
			Expect(v.Phase).To(Equal(playback.PhasePaused))
		})

		It("is empty for an empty sequence", func() {
			ctrl.Load(nil)
			v := ctrl.Snapshot()
			Expect(v.Total).To(Equal(0))
			Expect(v.AtEnd).To(BeTrue())
			_, ok := ctrl.Current()
			Expect(ok).To(BeFalse())
		})
	})
})
