// Copyright Meridiano Data SL, 2026. All rights reserved.

// Package container detects a local container engine (docker or podman) and
// runs images with piped stdin/stdout. The markitdown conversion backend uses
// it to stream documents through the converter image.
package container

import (
	"fmt"
	"io"
	"os/exec"
)

const (
	binDocker = "docker"
	binPodman = "podman"
)

// Engine runs container images: availability checks, local image lookup, and
// piped one-shot execution.
type Engine interface {
	// Name returns the engine binary name ("docker" or "podman").
	Name() string

	// Available reports whether the binary exists on PATH and responds to
	// an info command.
	Available() bool

	// CheckImage returns nil when the named image exists locally.
	CheckImage(image string) error

	// Pipe runs the image once with --rm, connecting stdin and stdout.
	Pipe(image string, stdin io.Reader, stdout io.Writer) error
}

// commander abstracts process execution so engines are testable without a
// container runtime installed.
type commander interface {
	LookPath(file string) (string, error)
	RunQuiet(name string, args ...string) error
	RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error
}

type osCommander struct{}

func (osCommander) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osCommander) RunQuiet(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (osCommander) RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	return cmd.Run()
}

// engine implements Engine for one binary. Docker and podman share all the
// logic; only the image-existence subcommand differs.
type engine struct {
	bin       string
	imageArgs []string
	cmd       commander
}

func (e *engine) Name() string { return e.bin }

func (e *engine) Available() bool {
	if _, err := e.cmd.LookPath(e.bin); err != nil {
		return false
	}
	return e.cmd.RunQuiet(e.bin, "info") == nil
}

func (e *engine) CheckImage(image string) error {
	args := append(append([]string{}, e.imageArgs...), image)
	if err := e.cmd.RunQuiet(e.bin, args...); err != nil {
		return fmt.Errorf("image %s not found in %s: %w", image, e.bin, err)
	}
	return nil
}

func (e *engine) Pipe(image string, stdin io.Reader, stdout io.Writer) error {
	if err := e.cmd.RunPiped(e.bin, []string{"run", "--rm", "-i", image}, stdin, stdout); err != nil {
		return fmt.Errorf("running %s container %s: %w", e.bin, image, err)
	}
	return nil
}

func newDockerEngine(cmd commander) *engine {
	return &engine{bin: binDocker, imageArgs: []string{"image", "inspect"}, cmd: cmd}
}

func newPodmanEngine(cmd commander) *engine {
	return &engine{bin: binPodman, imageArgs: []string{"image", "exists"}, cmd: cmd}
}

var defaultCommander commander = osCommander{}

// Detect tries docker first and falls back to podman. It returns an error
// when neither engine is operational.
func Detect() (Engine, error) {
	return detect(defaultCommander)
}

func detect(cmd commander) (Engine, error) {
	docker := newDockerEngine(cmd)
	if docker.Available() {
		return docker, nil
	}

	podman := newPodmanEngine(cmd)
	if podman.Available() {
		return podman, nil
	}

	return nil, fmt.Errorf("no container engine available: neither %s nor %s found or operational", binDocker, binPodman)
}
