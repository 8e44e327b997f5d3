// Package app implements the application layer for droidplan.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/droidplan/internal/core/domain"
	"go.trai.ch/droidplan/internal/core/ports"
	"go.trai.ch/droidplan/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	registry     ports.PlatformRegistry
	store        ports.LockfileStore
	renderer     ports.Renderer
	tracer       ports.Tracer
	logger       ports.Logger
	resolver     *resolver.Resolver
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	registry ports.PlatformRegistry,
	store ports.LockfileStore,
	renderer ports.Renderer,
	tracer ports.Tracer,
	log ports.Logger,
	res *resolver.Resolver,
) *App {
	return &App{
		configLoader: loader,
		registry:     registry,
		store:        store,
		renderer:     renderer,
		tracer:       tracer,
		logger:       log,
		resolver:     res,
	}
}

// ProjectOptions locate and configure the project to load.
type ProjectOptions struct {
	// Dir is the directory droidplan.yaml is searched from.
	Dir string
	// Overrides take precedence over local.properties and the built-in tooling defaults.
	Overrides map[string]string
	// RegistryDir overrides the registry directory of the configuration.
	RegistryDir string
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	ProjectOptions
	Variant   string
	Format    string
	Output    io.Writer
	WriteLock bool
	Check     bool
}

// Resolve loads the project, resolves the selected variant and renders the plan to opts.Output.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) (*domain.BuildPlan, error) {
	variant := opts.Variant
	if variant == "" {
		variant = domain.DebugBuildType
	}

	ctx, span := a.tracer.Start(ctx, "resolve", ports.WithAttribute("variant", variant))
	defer span.End()

	project, err := a.load(ctx, opts.ProjectOptions)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	plan, err := a.resolve(ctx, project, variant, opts.RegistryDir)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve build plan"), "variant", variant)
	}
	span.SetAttribute("fingerprint", plan.Fingerprint)

	for _, w := range plan.Warnings {
		a.logger.Warn(w)
	}

	if opts.Check {
		if err := a.checkLock(project.Root, variant, plan); err != nil {
			span.RecordError(err)
			return nil, err
		}
		a.logger.Info(fmt.Sprintf("%s is up to date for %s", domain.LockFileName, variant))
	}

	if opts.Output != nil {
		if err := a.renderer.RenderPlan(opts.Output, plan, opts.Format); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	if opts.WriteLock {
		if err := a.writeLock(project.Root, variant, plan); err != nil {
			span.RecordError(err)
			return nil, err
		}
		a.logger.Info(fmt.Sprintf("wrote %s for %s", domain.LockFileName, variant))
	}

	return plan, nil
}

// Validate resolves every declared variant and reports the first failure.
func (a *App) Validate(ctx context.Context, opts ProjectOptions) error {
	ctx, span := a.tracer.Start(ctx, "validate")
	defer span.End()

	project, err := a.load(ctx, opts)
	if err != nil {
		span.RecordError(err)
		return err
	}

	for _, v := range project.Variants {
		plan, err := a.resolve(ctx, project, v.Name, opts.RegistryDir)
		if err != nil {
			span.RecordError(err)
			return zerr.With(zerr.Wrap(err, "variant does not resolve"), "variant", v.Name)
		}
		for _, w := range plan.Warnings {
			a.logger.Warn(fmt.Sprintf("%s: %s", v.Name, w))
		}
		a.logger.Info(fmt.Sprintf("%s resolves to %s", v.Name, plan.Fingerprint))
	}

	span.SetAttribute("variants", len(project.Variants))
	return nil
}

// VariantsOptions configuration for the Variants method.
type VariantsOptions struct {
	ProjectOptions
	Format string
	Output io.Writer
}

// Variants renders the declared build variants.
func (a *App) Variants(ctx context.Context, opts VariantsOptions) error {
	ctx, span := a.tracer.Start(ctx, "variants")
	defer span.End()

	project, err := a.load(ctx, opts.ProjectOptions)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if opts.Output == nil {
		return nil
	}
	return a.renderer.RenderVariants(opts.Output, project.Variants, opts.Format)
}

func (a *App) load(ctx context.Context, opts ProjectOptions) (*domain.Project, error) {
	ctx, span := a.tracer.Start(ctx, "resolve.load")
	defer span.End()

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	project, err := a.configLoader.Load(ctx, dir, opts.Overrides)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	span.SetAttribute("project", project.Name)
	return project, nil
}

// resolve looks up the manifests of the project's platforms and runs the resolver.
func (a *App) resolve(
	ctx context.Context,
	project *domain.Project,
	variant string,
	registryDir string,
) (*domain.BuildPlan, error) {
	if registryDir == "" {
		registryDir = project.RegistryDir
	}

	manifests, err := a.manifests(ctx, project.Platforms(), registryDir)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, span := a.tracer.Start(ctx, "resolve.plan", ports.WithAttribute("variant", variant))
	defer span.End()

	plan, err := a.resolver.Resolve(project, variant, manifests)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("dependencies", len(plan.Dependencies.Dependencies))
	span.SetAttribute("warnings", len(plan.Warnings))
	return plan, nil
}

func (a *App) manifests(
	ctx context.Context,
	platforms []domain.Coordinate,
	dir string,
) (domain.Manifests, error) {
	ctx, span := a.tracer.Start(ctx, "resolve.registry", ports.WithAttribute("platforms", len(platforms)))
	defer span.End()

	manifests := make(domain.Manifests, len(platforms))
	seen := make(map[string]bool, len(platforms))
	for _, p := range platforms {
		if seen[p.Key()] {
			continue
		}
		seen[p.Key()] = true

		m, found, err := a.registry.Manifest(ctx, dir, p)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		if !found {
			a.logger.Debug(fmt.Sprintf("no manifest for %s, pinning its own group", p.String()))
			continue
		}
		manifests[p.Key()] = m
	}
	return manifests, nil
}

func (a *App) checkLock(root, variant string, plan *domain.BuildPlan) error {
	lock, err := a.store.Get(root)
	if err != nil {
		return err
	}

	locked, ok := domain.LockedPlan{}, false
	if lock != nil {
		locked, ok = lock.Variants[variant]
	}
	if !ok {
		err := zerr.Wrap(domain.ErrLockMissing, "run resolve --write-lock first")
		return zerr.With(err, "variant", variant)
	}

	if locked.Fingerprint == plan.Fingerprint {
		return nil
	}

	changes := locked.Diff(domain.LockPlan(plan))
	if len(changes) == 0 {
		changes = []string{"~ target or variant settings"}
	}
	err = zerr.Wrap(domain.ErrLockMismatch, strings.Join(changes, "\n"))
	err = zerr.With(err, "variant", variant)
	return zerr.With(err, "locked", locked.Fingerprint)
}

func (a *App) writeLock(root, variant string, plan *domain.BuildPlan) error {
	lock, err := a.store.Get(root)
	if err != nil {
		return err
	}
	if lock == nil {
		lock = domain.NewLockfile()
	}
	if lock.Variants == nil {
		lock.Variants = make(map[string]domain.LockedPlan)
	}
	lock.Variants[variant] = domain.LockPlan(plan)
	return a.store.Put(root, lock)
}

// logSettings is implemented by loggers whose output can be reconfigured at runtime.
type logSettings interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// ConfigureLogging switches the logger to JSON output and debug verbosity when supported.
func (a *App) ConfigureLogging(json, verbose bool) {
	if s, ok := a.logger.(logSettings); ok {
		s.SetJSON(json)
		s.SetVerbose(verbose)
	}
}
