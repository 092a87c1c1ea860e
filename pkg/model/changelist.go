// Copyright © 2018 One Concern

package model

import (
	"time"

	"gopkg.in/yaml.v2"
)

const (
	// CurrentChangelistVersion is written into freshly staged manifests
	CurrentChangelistVersion = 1
)

// ChangelistDescriptor represents a submittable unit of edits: the changeset
// computed by one reconciliation run together with its description.
type ChangelistDescriptor struct {
	Message   string    `json:"message" yaml:"message"`
	Author    Author    `json:"author" yaml:"author"`
	Timestamp time.Time `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Version   uint64    `json:"version,omitempty" yaml:"version,omitempty"`
	Changes   []Change  `json:"changes" yaml:"changes"`
	_         struct{}
}

// Author of a changelist
type Author struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	_     struct{}
}

func (a Author) String() string {
	if a.Email == "" {
		return a.Name
	}
	if a.Name == "" {
		return a.Email
	}
	return a.Name + " <" + a.Email + ">"
}

// NewChangelistDescriptor builds a manifest for a changeset
func NewChangelistDescriptor(message string, author Author, cs *ChangeSet) ChangelistDescriptor {
	return ChangelistDescriptor{
		Message:   message,
		Author:    author,
		Timestamp: time.Now().UTC(),
		Version:   CurrentChangelistVersion,
		Changes:   cs.Changes(),
	}
}

// ChangeSet rebuilds the changeset recorded in the manifest.
func (d *ChangelistDescriptor) ChangeSet() (*ChangeSet, error) {
	cs := NewChangeSet()
	for _, change := range d.Changes {
		if err := cs.Add(change); err != nil {
			return nil, err
		}
	}
	return cs, nil
}

// MarshalChangelist serializes a changelist manifest to YAML
func MarshalChangelist(d ChangelistDescriptor) ([]byte, error) {
	return yaml.Marshal(d)
}

// UnmarshalChangelist deserializes a changelist manifest from YAML
func UnmarshalChangelist(b []byte) (ChangelistDescriptor, error) {
	var d ChangelistDescriptor
	if err := yaml.Unmarshal(b, &d); err != nil {
		return ChangelistDescriptor{}, err
	}
	return d, nil
}
