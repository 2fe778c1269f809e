// Package catalog loads users, opportunities and learning resources into the engine.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/spigell/fitpath/internal/learning"
	"github.com/spigell/fitpath/internal/profile"
	"github.com/spigell/fitpath/internal/recommender"
)

const (
	UsersKey         = "users"
	OpportunitiesKey = "opportunities"
	ResourcesKey     = "learning-resources"
)

//go:embed catalog.schema.json
var schema string

// Resource maps a skill tag to a learning resource description.
type Resource struct {
	Skill    string `mapstructure:"skill"`
	Resource string `mapstructure:"resource"`
}

type Catalog struct {
	Users         []*profile.User        `mapstructure:"users"`
	Opportunities []*profile.Opportunity `mapstructure:"opportunities"`
	Resources     []Resource             `mapstructure:"learning-resources"`
}

// Load reads the catalog keys from the viper instance.
func Load(v *viper.Viper) (*Catalog, error) {
	raw := map[string]any{}
	for _, key := range []string{UsersKey, OpportunitiesKey, ResourcesKey} {
		if v.IsSet(key) {
			raw[key] = v.Get(key)
		}
	}
	return Decode(raw)
}

// Decode validates the raw document against the catalog schema and decodes it.
func Decode(raw map[string]any) (*Catalog, error) {
	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), gojsonschema.NewGoLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("catalog schema validation failed: %s", strings.Join(msgs, "; "))
	}

	var c Catalog
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.TextUnmarshallerHookFunc(),
		Result:     &c,
	})
	if err != nil {
		return nil, fmt.Errorf("create catalog decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return &c, nil
}

// LearningResources returns the resources as a lookup catalog. Later entries
// for the same skill win.
func (c *Catalog) LearningResources() learning.Catalog {
	resources := make(learning.Catalog, len(c.Resources))
	for _, r := range c.Resources {
		resources[strings.TrimSpace(r.Skill)] = r.Resource
	}
	return resources
}

// Engine builds an engine preloaded with the catalog contents.
func (c *Catalog) Engine(logger *zap.Logger) *recommender.Engine {
	e := recommender.New(c.LearningResources(), logger)
	c.Register(e)
	return e
}

// Register upserts every user and opportunity into the engine.
func (c *Catalog) Register(e *recommender.Engine) {
	for _, u := range c.Users {
		e.RegisterUser(u)
	}
	for _, o := range c.Opportunities {
		e.RegisterOpportunity(o)
	}
}
