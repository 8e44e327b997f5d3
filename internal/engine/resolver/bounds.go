package resolver

import (
	"fmt"
	"strings"

	"go.trai.ch/droidplan/internal/core/domain"
	"go.trai.ch/zerr"
)

// ValidateSdkBounds checks that every API level is positive and min <= target <= compile.
func ValidateSdkBounds(target domain.BuildTarget) error {
	if target.SDK.Ordered() {
		return nil
	}

	err := zerr.Wrap(domain.ErrBounds, "expected 1 <= minSdk <= targetSdk <= compileSdk")
	err = zerr.With(err, "min_sdk", target.SDK.Min)
	err = zerr.With(err, "target_sdk", target.SDK.Target)
	return zerr.With(err, "compile_sdk", target.SDK.Compile)
}

// jvmTargetWarning reports a Kotlin JVM target that differs from the Java target compatibility.
func jvmTargetWarning(target domain.BuildTarget) string {
	java := normalizeJavaVersion(target.Compile.TargetCompatibility)
	kotlin := normalizeJavaVersion(target.Kotlin.JVMTarget)
	if java == "" || kotlin == "" || java == kotlin {
		return ""
	}
	return fmt.Sprintf(
		"kotlin jvmTarget %s differs from java targetCompatibility %s",
		target.Kotlin.JVMTarget, target.Compile.TargetCompatibility,
	)
}

// normalizeJavaVersion maps "JavaVersion.VERSION_1_8", "VERSION_1_8", "1.8" and "8" onto "8".
func normalizeJavaVersion(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(v, ".toString()")
	v = strings.TrimPrefix(v, "JavaVersion.")
	v = strings.TrimPrefix(v, "VERSION_")
	v = strings.ReplaceAll(v, "_", ".")
	return strings.TrimPrefix(v, "1.")
}
