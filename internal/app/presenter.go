package app

import (
	"sync"

	"gocv.io/x/gocv"
)

// Presenter shows the two output images once per iteration and polls
// for a key press. Present returns the pressed key code, or a negative
// value when no key was pressed within the poll timeout.
type Presenter interface {
	Present(camera, model gocv.Mat) int
	Close() error
}

// windowPresenter shows the images in two independently positioned
// OpenCV windows.
type windowPresenter struct {
	feed   *gocv.Window
	model  *gocv.Window
	pollMs int
}

// NewWindowPresenter opens the two display windows. pollMs is the key
// poll timeout per iteration and doubles as the loop's only yield
// point.
func NewWindowPresenter(pollMs int) Presenter {
	if pollMs <= 0 {
		pollMs = 1
	}

	feed := gocv.NewWindow("Natyam - Camera")
	model := gocv.NewWindow("Natyam - Digital Model")
	feed.MoveWindow(0, 0)
	model.MoveWindow(660, 0)

	return &windowPresenter{
		feed:   feed,
		model:  model,
		pollMs: pollMs,
	}
}

func (p *windowPresenter) Present(camera, model gocv.Mat) int {
	p.feed.IMShow(camera)
	p.model.IMShow(model)
	return p.feed.WaitKey(p.pollMs)
}

func (p *windowPresenter) Close() error {
	if err := p.feed.Close(); err != nil {
		p.model.Close()
		return err
	}
	return p.model.Close()
}

// MockPresenter records presented frames and plays back scripted key
// presses for tests.
type MockPresenter struct {
	mu        sync.Mutex
	keys      []int
	presented int
	closed    bool
}

// NewMockPresenter creates a MockPresenter that reports no key presses.
func NewMockPresenter() *MockPresenter {
	return &MockPresenter{}
}

// SetKeys scripts the key returned by each successive Present call.
// After the script runs out, Present reports no key pressed.
func (p *MockPresenter) SetKeys(keys []int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = keys
}

func (p *MockPresenter) Present(camera, model gocv.Mat) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.presented++
	if len(p.keys) == 0 {
		return -1
	}
	key := p.keys[0]
	p.keys = p.keys[1:]
	return key
}

func (p *MockPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// Presented returns how many iterations presented both images.
func (p *MockPresenter) Presented() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.presented
}

// Closed reports whether Close was called.
func (p *MockPresenter) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}
