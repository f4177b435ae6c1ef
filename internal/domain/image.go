package domain

// GeneratedImage is one image produced by an images.generate operation.
type GeneratedImage struct {
	URL           string `json:"url"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

// ImageArtifact is the record persisted for each generated image.
type ImageArtifact struct {
	URL    string `json:"url"`
	Prompt string `json:"prompt"`
}

// ImageModelRule describes which optional parameters a family of image models accepts.
type ImageModelRule struct {
	Model           string `yaml:"model"`
	SupportsQuality bool   `yaml:"supports_quality"`
	SupportsStyle   bool   `yaml:"supports_style"`
}

// ImageModelRules maps model families to the optional parameters they accept.
type ImageModelRules struct {
	Rules []ImageModelRule `yaml:"rules"`
}

// Lookup returns the rule for the model. Unknown models accept no optional parameters.
func (r ImageModelRules) Lookup(model string) ImageModelRule {
	for _, rule := range r.Rules {
		if rule.Model == model {
			return rule
		}
	}
	return ImageModelRule{Model: model}
}
