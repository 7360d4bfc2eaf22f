package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"cubeworld/internal/config"
	"cubeworld/internal/engine"
	"cubeworld/internal/render"
	"cubeworld/internal/terrain"
	"cubeworld/internal/world"
)

const (
	moveSpeed        = 24.0 // blocks per second
	mouseSensitivity = 0.08 // degrees per pixel
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	var (
		cfgPath  string
		headless bool
	)
	flag.StringVar(&cfgPath, "config", "", "path to configuration file (json or yaml)")
	flag.BoolVar(&headless, "headless", false, "run the chunk pipeline without a window")
	flag.Parse()

	logger := log.New(log.Writer(), "cubeworld ", log.LstdFlags|log.Lmicroseconds)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	cfg.ApplyRuntimeDefaults(runtime.NumCPU())

	pool := engine.NewPool(cfg.Engine.Workers, cfg.Engine.QueueDepth)
	defer pool.Close()

	// Octaves 0 turns off the noise field and falls back to flat strata.
	var gen engine.Generator
	if cfg.Terrain.Octaves == 0 {
		gen = terrain.NewLayeredGenerator()
	} else {
		gen = terrain.NewNoiseGenerator(cfg.Terrain)
	}

	if headless {
		if err := runHeadless(cfg, logger, pool, gen); err != nil {
			logger.Fatalf("headless run: %v", err)
		}
		return
	}

	if err := runWindowed(cfg, logger, pool, gen); err != nil {
		logger.Fatalf("windowed run: %v", err)
	}
}

// runHeadless drives the chunk pipeline on a timer with a slowly drifting
// observer, without creating a window. Useful for soaking the streaming
// logic and for machines without a GPU.
func runHeadless(cfg *config.Config, logger *log.Logger, pool *engine.Pool, gen engine.Generator) error {
	ctx, cancel := signalContext(logger)
	defer cancel()

	mgr := engine.NewManager(cfg.Engine, logger, pool, render.NullBackend{}, gen)
	defer mgr.Close()

	tickRate := cfg.Render.TickRate.Duration()
	if tickRate <= 0 {
		tickRate = 16 * time.Millisecond
	}
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	logger.Printf("streaming chunks headless, draw distance %d, %d workers",
		cfg.Engine.DrawDistance, cfg.Engine.Workers)

	observer := mgl32.Vec3{0, 2, 0}
	start := time.Now()
	lastReport := start

	for {
		select {
		case <-ctx.Done():
			logger.Printf("shutting down")
			return nil
		case now := <-ticker.C:
			// Drift the observer so eviction and loading both see traffic.
			elapsed := float32(now.Sub(start).Seconds())
			observer[0] = elapsed * float32(world.ChunkSize) / 4

			mgr.Maintain(world.GlobalFromVec3(observer).ChunkID())

			if now.Sub(lastReport) >= 5*time.Second {
				logic, drawable, inflight := mgr.Counts()
				logger.Printf("chunks resident=%d drawable=%d inflight=%d", logic, drawable, inflight)
				lastReport = now
			}
		}
	}
}

func runWindowed(cfg *config.Config, logger *log.Logger, pool *engine.Pool, gen engine.Generator) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Render.WindowWidth, cfg.Render.WindowHeight, "cubeworld", nil, nil)
	if err != nil {
		return err
	}
	window.MakeContextCurrent()
	if cfg.Render.VSync {
		glfw.SwapInterval(1)
	}

	backend, err := render.NewGLBackend()
	if err != nil {
		return err
	}

	mgr := engine.NewManager(cfg.Engine, logger, pool, backend, gen)
	defer mgr.Close()

	camera := render.NewCamera(mgl32.Vec3{0, float32(cfg.Terrain.Amplitude) + 8, 0})
	projection := render.Projection(cfg.Render)

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	var lastX, lastY float64
	firstMouse := true
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if firstMouse {
			lastX, lastY = x, y
			firstMouse = false
			return
		}
		camera.Rotate(
			float32(x-lastX)*mouseSensitivity,
			float32(lastY-y)*mouseSensitivity,
		)
		lastX, lastY = x, y
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if width > 0 && height > 0 {
			resized := cfg.Render
			resized.WindowWidth, resized.WindowHeight = width, height
			projection = render.Projection(resized)
		}
	})

	logger.Printf("starting windowed at %dx%d, draw distance %d, %d workers",
		cfg.Render.WindowWidth, cfg.Render.WindowHeight, cfg.Engine.DrawDistance, cfg.Engine.Workers)

	lastFrame := time.Now()
	for !window.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now

		glfw.PollEvents()
		applyMovement(window, camera, dt)

		mgr.Maintain(world.GlobalFromVec3(camera.Position).ChunkID())

		backend.Draw(projection, camera.View(), mgr.Drawables())
		window.SwapBuffers()
	}

	logger.Printf("window closed, shutting down")
	return nil
}

func applyMovement(window *glfw.Window, camera *render.Camera, dt float32) {
	var forward, right, up float32
	step := moveSpeed * dt

	if window.GetKey(glfw.KeyW) == glfw.Press {
		forward += step
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		forward -= step
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		right += step
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		right -= step
	}
	if window.GetKey(glfw.KeySpace) == glfw.Press {
		up += step
	}
	if window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		up -= step
	}

	camera.Move(forward, right, up)
}

func signalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
			return
		}

		// Ensure the process terminates if shutdown stalls.
		time.AfterFunc(10*time.Second, func() {
			logger.Printf("forced shutdown after timeout")
			os.Exit(1)
		})
	}()

	return ctx, cancel
}
