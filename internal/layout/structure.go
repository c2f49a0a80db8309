package layout

// ProjectName is the name of the generated project.
const ProjectName = "SmartClimateForecast"

// base is the core repository layout.
var base = []DirectoryEntry{
	{".github/workflows", []string{"ci-cd.yml"}},
	{"app/static/css", []string{"style.css"}},
	{"app/static/images", []string{"ahfid_logo.png"}},
	{"app/static/js", []string{"script.js"}},
	{"app/templates", []string{"index.html", "prediction.html", "faq.html"}},
	{"artifacts", []string{".gitkeep"}},
	{"config", []string{"config.yaml", "params.yaml"}},
	{"data", []string{".gitkeep"}},
	{"logs", []string{"running_logs.log"}},
	{"notebooks", []string{
		"01_data_ingestion.ipynb",
		"02_prepare_base_model.ipynb",
		"03_model_training.ipynb",
		"04_model_evaluation.ipynb",
		"05_model_inference.ipynb",
	}},
	{"notebooks/artifacts", []string{".gitkeep"}},
	{"src/SmartClimateForecast/components", []string{
		"__init__.py",
		"data_ingestion.py",
		"model_evaluation.py",
		"model_trainer.py",
		"prepare_base_model.py",
	}},
	{"src/SmartClimateForecast/config", []string{"__init__.py", "configuration.py"}},
	{"src/SmartClimateForecast/entity", []string{"__init__.py", "config_entity.py"}},
	{"src/SmartClimateForecast/pipeline", []string{
		"__init__.py",
		"predict.py",
		"stage_01_data_ingestion.py",
		"stage_02_prepare_base_model.py",
		"stage_03_model_trainer.py",
		"stage_04_model_evaluation.py",
	}},
	{"src/SmartClimateForecast/utils", []string{"__init__.py", "common.py", "logger.py"}},
	{"src/SmartClimateForecast/constants", []string{"__init__.py"}},
	{"tests", []string{
		"test_data_pipeline.py",
		"test_digital_twin.py",
		"test_model_training.py",
		"test_model_evaluation.py",
		"test_api_endpoints.py",
		"test_monitoring.py",
		"test_utils.py",
		"test_predict_pipeline.py",
	}},
}

// extended adds the digital twin, data pipeline, API, monitoring, experiment
// tracking, automation and environment modules.
var extended = []DirectoryEntry{
	// digital twin core
	{"digital_twin", []string{
		"__init__.py",
		"state_manager.py",
		"model_coupling.py",
		"visualization.py",
		"scheduler.py",
		"README.md",
	}},

	// data pipeline
	{"data_pipeline/ingestion", []string{"__init__.py", "iot_data_listener.py"}},
	{"data_pipeline/transformation", []string{"__init__.py", "preprocess.py"}},
	{"data_pipeline/storage", []string{"__init__.py", "data_lake_handler.py"}},

	// API layer
	{"api/routes", []string{"__init__.py", "forecast.py", "sensors.py", "healthcheck.py"}},
	{"api/utils", []string{"__init__.py", "security.py", "response_models.py"}},

	// monitoring
	{"monitoring", []string{"__init__.py", "metrics_collector.py", "alerts.py", "README.md"}},
	{"monitoring/dashboards", []string{"grafana_template.json"}},

	// experiments & tracking
	{"experiments", []string{"config_experiments.yaml", "README.md", "runs/.gitkeep", "logs/.gitkeep"}},

	// automation
	{"scripts", []string{"start_local.sh", "run_tests.sh", "retrain_model.sh", "backup_artifacts.sh"}},

	// environment files
	{"env", []string{".env.development", ".env.production", ".env.test"}},
}

// Base returns the base directory map in declaration order.
func Base() []DirectoryEntry {
	return clone(base)
}

// Extended returns the extended-modules directory map in declaration order.
func Extended() []DirectoryEntry {
	return clone(extended)
}

func clone(entries []DirectoryEntry) []DirectoryEntry {
	out := make([]DirectoryEntry, len(entries))
	for i, e := range entries {
		out[i] = DirectoryEntry{Dir: e.Dir, Files: append([]string(nil), e.Files...)}
	}
	return out
}
