// Package config provides the configuration loader for droidplan.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"go.trai.ch/droidplan/internal/core/domain"
	"go.trai.ch/droidplan/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger   ports.Logger
	Catalog  ports.ToolingCatalogProvider
	Versions ports.VersionCatalogReader
}

// NewLoader creates a new Loader.
func NewLoader(
	logger ports.Logger,
	catalog ports.ToolingCatalogProvider,
	versions ports.VersionCatalogReader,
) *Loader {
	return &Loader{Logger: logger, Catalog: catalog, Versions: versions}
}

var (
	packageNameRegex   = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*(\.[a-zA-Z][a-zA-Z0-9_]*)+$`)
	configurationRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)
)

// Load discovers droidplan.yaml from cwd upwards and returns the loaded project.
func (l *Loader) Load(ctx context.Context, cwd string, overrides map[string]string) (*domain.Project, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	root := filepath.Dir(configPath)
	l.Logger.Debug(fmt.Sprintf("using %s", configPath))

	var planfile Planfile
	if err := readAndUnmarshalYAML(configPath, &planfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tooling, err := l.Catalog.Catalog(root, overrides)
	if err != nil {
		return nil, err
	}

	catalogPath := domain.DefaultVersionCatalogPath()
	if planfile.VersionCatalog != "" {
		catalogPath = planfile.VersionCatalog
	}
	versions, err := l.Versions.Read(resolvePath(root, catalogPath))
	if err != nil {
		return nil, err
	}

	r := &references{tooling: tooling, versions: versions}
	return l.buildProject(root, &planfile, r)
}

func (l *Loader) buildProject(root string, planfile *Planfile, r *references) (*domain.Project, error) {
	project := &domain.Project{
		Root:          root,
		Name:          planfile.Name,
		FlutterSource: planfile.Flutter.Source,
	}
	if project.Name == "" {
		project.Name = filepath.Base(root)
	}
	if planfile.Registry.Dir != "" {
		project.RegistryDir = resolvePath(root, planfile.Registry.Dir)
	}

	var err error
	if project.Plugins, err = r.plugins(planfile.Plugins); err != nil {
		return nil, err
	}
	project.Rules = buildRules(planfile.Rules)

	if project.Target, err = l.buildTarget(&planfile.Android, r); err != nil {
		return nil, err
	}

	if project.Dependencies, err = r.dependencies(planfile.Dependencies); err != nil {
		return nil, err
	}

	project.SigningConfigs = buildSigningConfigs(planfile.Android.SigningConfigs)
	if project.Variants, err = buildVariants(planfile.Android.BuildTypes, project.SigningConfigs); err != nil {
		return nil, err
	}

	return project, nil
}

func (l *Loader) buildTarget(android *AndroidDTO, r *references) (domain.BuildTarget, error) {
	target := domain.BuildTarget{
		Namespace:     android.Namespace,
		ApplicationID: android.DefaultConfig.ApplicationID,
		Compile: domain.CompileOptions{
			SourceCompatibility: android.CompileOptions.SourceCompatibility,
			TargetCompatibility: android.CompileOptions.TargetCompatibility,
		},
		Kotlin: domain.KotlinOptions{
			JVMTarget:        android.KotlinOptions.JvmTarget,
			FreeCompilerArgs: android.KotlinOptions.FreeCompilerArgs,
		},
	}

	if !packageNameRegex.MatchString(target.Namespace) {
		return target, zerr.With(zerr.Wrap(domain.ErrConfiguration, "invalid namespace"), "namespace", target.Namespace)
	}
	if target.ApplicationID == "" {
		l.Logger.Debug("applicationId not set, using namespace")
		target.ApplicationID = target.Namespace
	}
	if !packageNameRegex.MatchString(target.ApplicationID) {
		err := zerr.Wrap(domain.ErrConfiguration, "invalid applicationId")
		return target, zerr.With(err, "application_id", target.ApplicationID)
	}

	var err error
	if target.SDK.Compile, err = r.apiLevel("compileSdk", android.CompileSdk, domain.CatalogCompileSdk); err != nil {
		return target, err
	}
	if target.SDK.Min, err = r.apiLevel("minSdk", android.DefaultConfig.MinSdk, domain.CatalogMinSdk); err != nil {
		return target, err
	}
	if target.SDK.Target, err = r.apiLevel("targetSdk", android.DefaultConfig.TargetSdk, domain.CatalogTargetSdk); err != nil {
		return target, err
	}
	if target.VersionCode, err = r.versionCode(android.DefaultConfig.VersionCode); err != nil {
		return target, err
	}
	if target.VersionName, err = r.value("versionName", android.DefaultConfig.VersionName, domain.CatalogVersionName); err != nil {
		return target, err
	}
	if android.NdkVersion != "" {
		if target.NDKVersion, err = r.value("ndkVersion", android.NdkVersion, domain.CatalogNdkVersion); err != nil {
			return target, err
		}
	}

	return target, nil
}

func buildRules(dtos []RuleDTO) []domain.OrderingRule {
	rules := make([]domain.OrderingRule, 0, len(dtos))
	for _, dto := range dtos {
		rule := domain.OrderingRule{Plugin: dto.Plugin}
		for _, req := range dto.Requires {
			rule.Requires = append(rule.Requires, domain.Requirement{AnyOf: req.AnyOf, Constraint: req.Constraint})
		}
		rules = append(rules, rule)
	}
	return rules
}

func buildSigningConfigs(dtos map[string]SigningConfigDTO) []domain.SigningConfig {
	configs := []domain.SigningConfig{{Name: domain.DebugSigningConfig}}
	for _, name := range sortedKeys(dtos) {
		if name == domain.DebugSigningConfig {
			configs[0].StoreFile = dtos[name].StoreFile
			configs[0].KeyAlias = dtos[name].KeyAlias
			continue
		}
		configs = append(configs, domain.SigningConfig{
			Name:      name,
			StoreFile: dtos[name].StoreFile,
			KeyAlias:  dtos[name].KeyAlias,
		})
	}
	return configs
}

// buildVariants returns the declared build types sorted by name, with the implicit debug type added.
func buildVariants(dtos map[string]BuildTypeDTO, signing []domain.SigningConfig) ([]domain.BuildVariant, error) {
	known := make(map[string]bool, len(signing))
	for _, s := range signing {
		known[s.Name] = true
	}

	if _, ok := dtos[domain.DebugBuildType]; !ok {
		if dtos == nil {
			dtos = make(map[string]BuildTypeDTO)
		}
		dtos[domain.DebugBuildType] = BuildTypeDTO{}
	}

	variants := make([]domain.BuildVariant, 0, len(dtos))
	for _, name := range sortedKeys(dtos) {
		dto := dtos[name]

		variant := domain.BuildVariant{Name: name}
		if name == domain.DebugBuildType {
			variant = domain.DebugVariant()
		}
		variant.MinifyEnabled = dto.MinifyEnabled
		variant.ShrinkResources = dto.ShrinkResources
		if dto.Debuggable != nil {
			variant.Debuggable = *dto.Debuggable
		}
		if dto.SigningConfig != nil {
			variant.Signing.SigningConfig = *dto.SigningConfig
		}

		if s := variant.Signing.SigningConfig; s != "" && !known[s] {
			err := zerr.Wrap(domain.ErrConfiguration, "build type references an undeclared signing config")
			err = zerr.With(err, "build_type", name)
			return nil, zerr.With(err, "signing_config", s)
		}
		if variant.ShrinkResources && !variant.MinifyEnabled {
			err := zerr.Wrap(domain.ErrConfiguration, "shrinkResources requires minifyEnabled")
			return nil, zerr.With(err, "build_type", name)
		}

		variants = append(variants, variant)
	}
	return variants, nil
}

func findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		path := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	err := zerr.Wrap(domain.ErrConfigNotFound, "no "+domain.ConfigFileName+" in any parent directory")
	return "", zerr.With(err, "cwd", cwd)
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by findConfiguration
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(domain.ErrConfigReadFailed, err.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(domain.ErrConfigParseFailed, parseErr.Error())
	}

	return nil
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(root, path))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
