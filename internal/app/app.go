// Package app wires the wrapper's adapters and use cases into a symbiont application.
package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/adapters/outbound/config"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/adapters/outbound/filestore"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/adapters/outbound/log"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/adapters/outbound/openai"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/adapters/outbound/time"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/telemetry"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/usecases"
)

// NewWrapperApp creates the application with every adapter and use case registered.
// The given initializers run between the infrastructure and the use cases, which is where
// callers register the domain.RecoveryDecider the dispatcher depends on.
func NewWrapperApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(
			&config.InitDotEnv{},
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&time.InitCurrentTimeProvider{},
			&filestore.InitCatalogFile{},
			&filestore.InitArtifactStore{},
			&openai.InitProvider{},
		).
		Initialize(initializers...).
		Initialize(
			&usecases.InitDispatcher{},
			&usecases.InitModelCatalog{},
			&usecases.InitCompleteChat{},
			&usecases.InitRunAssistant{},
			&usecases.InitGenerateImages{},
			&usecases.InitTranscribeAudio{},
		).
		Introspect(&MermaidGraphIntrospector{}).
		Introspect(&ReportLoggerIntrospector{})
}

// NewHostedApp creates the application and hosts the given runnables in it.
func NewHostedApp(runnables []symbiont.Runnable, initializers ...symbiont.Initializer) *symbiont.App {
	return NewWrapperApp(initializers...).Host(runnables...)
}
