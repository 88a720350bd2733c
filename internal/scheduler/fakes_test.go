package scheduler

import (
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/ZanzyTHEbar/drivesim/internal/domain"
	"github.com/ZanzyTHEbar/drivesim/internal/ports"
	"github.com/ZanzyTHEbar/drivesim/internal/ports/mocks"
)

// callLog records calls in execution order.
type callLog struct {
	calls []string
}

func (l *callLog) add(format string, args ...any) {
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

type fakeComponent struct {
	name     string
	priority int
	cycle    int
	offset   int
	response int
	init     bool
	links    []ports.OutputLink
	failAt   int
	log      *callLog
}

func (c *fakeComponent) Name() string                    { return c.name }
func (c *fakeComponent) Priority() int                   { return c.priority }
func (c *fakeComponent) CycleTime() int                  { return c.cycle }
func (c *fakeComponent) OffsetTime() int                 { return c.offset }
func (c *fakeComponent) ResponseTime() int               { return c.response }
func (c *fakeComponent) Init() bool                      { return c.init }
func (c *fakeComponent) OutputLinks() []ports.OutputLink { return c.links }

func (c *fakeComponent) TriggerCycle(now int) bool {
	c.log.add("%s.trigger@%d", c.name, now)
	return c.failAt == 0 || now != c.failAt
}

func (c *fakeComponent) AcquireOutputData(linkID, now int) bool {
	c.log.add("%s.output%d@%d", c.name, linkID, now)
	return true
}

func (c *fakeComponent) UpdateInputData(linkID, now int) bool {
	c.log.add("%s.input%d@%d", c.name, linkID, now)
	return true
}

type fakeAgent struct {
	id         int
	components []ports.Component
	clock      domain.Clock
}

func (a *fakeAgent) ID() int                       { return a.id }
func (a *fakeAgent) Components() []ports.Component { return a.components }
func (a *fakeAgent) BindClock(clock domain.Clock)  { a.clock = clock }

// harness wires gomock collaborators whose behavior is driven by its fields.
type harness struct {
	net Network
	log *callLog

	spawnAt   map[int][]ports.Agent
	removeAt  map[int][]int
	endAt     int
	pending   []ports.Agent
	now       int
	manip     *mocks.MockTrigger
	detector  *mocks.MockTrigger
	events    *mocks.MockEventNetwork
	publisher *mocks.MockEventPublisher
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		log:      &callLog{},
		spawnAt:  map[int][]ports.Agent{},
		removeAt: map[int][]int{},
		endAt:    -1,
	}

	world := mocks.NewMockWorld(ctrl)
	world.EXPECT().PublishGlobalData(gomock.Any()).DoAndReturn(func(now int) bool {
		h.log.add("publish@%d", now)
		return true
	}).AnyTimes()
	world.EXPECT().SyncGlobalData(gomock.Any()).DoAndReturn(func(now int) bool {
		h.log.add("sync@%d", now)
		return true
	}).AnyTimes()
	world.EXPECT().RemovedAgentsInPreviousTimestep().DoAndReturn(func() []int {
		return h.removeAt[h.now]
	}).AnyTimes()

	spawn := mocks.NewMockSpawnPointNetwork(ctrl)
	spawn.EXPECT().TriggerPreRunSpawnZones().DoAndReturn(func() bool {
		h.log.add("prerun")
		h.pending = append(h.pending, h.spawnAt[-1]...)
		return true
	}).AnyTimes()
	spawn.EXPECT().TriggerRuntimeSpawnPoints(gomock.Any()).DoAndReturn(func(now int) bool {
		h.now = now
		h.log.add("spawn@%d", now)
		h.pending = append(h.pending, h.spawnAt[now]...)
		return true
	}).AnyTimes()
	spawn.EXPECT().ConsumeNewAgents().DoAndReturn(func() []ports.Agent {
		agents := h.pending
		h.pending = nil
		return agents
	}).AnyTimes()

	h.detector = mocks.NewMockTrigger(ctrl)
	detectors := mocks.NewMockEventDetectorNetwork(ctrl)
	detectors.EXPECT().EventDetectors().Return([]ports.Trigger{h.detector}).AnyTimes()

	h.manip = mocks.NewMockTrigger(ctrl)
	manipulators := mocks.NewMockManipulatorNetwork(ctrl)
	manipulators.EXPECT().Manipulators().Return([]ports.Trigger{h.manip}).AnyTimes()

	observations := mocks.NewMockObservationNetwork(ctrl)
	observations.EXPECT().UpdateTimeStep(gomock.Any(), gomock.Any()).DoAndReturn(func(now int, result *domain.RunResult) bool {
		h.log.add("observe@%d", now)
		if h.endAt >= 0 && now >= h.endAt {
			result.SetEndCondition("test end")
		}
		return true
	}).AnyTimes()

	buffer := mocks.NewMockDataBuffer(ctrl)
	buffer.EXPECT().ClearTimeStep().Do(func() { h.log.add("clear") }).AnyTimes()

	h.events = mocks.NewMockEventNetwork(ctrl)
	h.publisher = mocks.NewMockEventPublisher(ctrl)

	h.net = Network{
		World:          world,
		SpawnPoints:    spawn,
		EventDetectors: detectors,
		Manipulators:   manipulators,
		Observations:   observations,
		DataBuffer:     buffer,
	}
	return h
}

// quietFramework accepts any detector, manipulator and event network call.
func (h *harness) quietFramework() {
	h.detector.EXPECT().Trigger(gomock.Any()).DoAndReturn(func(now int) bool {
		h.log.add("detect@%d", now)
		return true
	}).AnyTimes()
	h.manip.EXPECT().Trigger(gomock.Any()).DoAndReturn(func(now int) bool {
		h.log.add("manipulate@%d", now)
		return true
	}).AnyTimes()
	h.events.EXPECT().Clear().AnyTimes()
	h.publisher.EXPECT().Publish(gomock.Any()).AnyTimes()
}
