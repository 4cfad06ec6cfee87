package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/zbitech/zbi-db/pkg/domain"
	kpgcat "github.com/zbitech/zbi-db/pkg/domain/catalog/db"
	domerr "github.com/zbitech/zbi-db/pkg/domain/errors"
	kpguser "github.com/zbitech/zbi-db/pkg/domain/user/db"
	xe "github.com/zbitech/zbi-db/pkg/errors"
	"gopkg.in/yaml.v3"
)

// seedPolicy is the yaml shape of <dir>/policy.yaml.
type seedPolicy struct {
	StorageClass          string  `yaml:"storageClass"`
	SnapshotClass         string  `yaml:"snapshotClass"`
	DomainName            string  `yaml:"domainName"`
	CertificateName       string  `yaml:"certificateName"`
	ServiceAccount        string  `yaml:"serviceAccount"`
	InformerResync        int32   `yaml:"informerResync"`
	EnableMonitor         bool    `yaml:"enableMonitor"`
	RequireAuthentication bool    `yaml:"requireAuthentication"`
	Envoy                 struct {
		Image                 string   `yaml:"image"`
		Command               []string `yaml:"command"`
		Timeout               float32  `yaml:"timeout"`
		AccessAuthorization   bool     `yaml:"accessAuthorization"`
		AuthServerURL         string   `yaml:"authServerUrl"`
		AuthServerPort        int32    `yaml:"authServerPort"`
		AuthenticationEnabled bool     `yaml:"authenticationEnabled"`
	} `yaml:"envoy"`
	Request struct {
		Cpu     string `yaml:"cpu"`
		Memory  string `yaml:"memory"`
		Storage string `yaml:"storage"`
	} `yaml:"request"`
}

// seedBlockchain is the yaml shape of <dir>/blockchains/<name>.yaml.
type seedBlockchain struct {
	Name     string   `yaml:"name"`
	Networks []string `yaml:"networks"`
	Nodes    []struct {
		Name   string `yaml:"name"`
		Type   string `yaml:"type"`
		Images []struct {
			Name    string `yaml:"name"`
			Version string `yaml:"version"`
			Url     string `yaml:"url"`
		} `yaml:"images"`
		Endpoints  map[string][]string    `yaml:"endpoints"`
		Ports      map[string]int32       `yaml:"ports"`
		Settings   map[string]interface{} `yaml:"settings"`
		Properties map[string]interface{} `yaml:"properties"`
	} `yaml:"nodes"`
	Templates map[string]string `yaml:"templates"`
}

// seedUsers is the yaml shape of <dir>/users.yaml.
type seedUsers struct {
	Users []struct {
		Email    string `yaml:"email"`
		Name     string `yaml:"name"`
		Role     string `yaml:"role"`
		Provider string `yaml:"provider"`
	} `yaml:"users"`
}

// Run loads the bootstrap files under dir into the catalog.
//
// Seeding is idempotent: an already seeded policy is overwritten,
// already registered blockchains get their nodes and templates
// refreshed, and accounts that exist are left alone.
func Run(ctx context.Context, dir string, catalog kpgcat.Interface, users kpguser.Interface) error {
	if err := seedPolicyFile(ctx, filepath.Join(dir, "policy.yaml"), catalog); err != nil {
		return err
	}
	if err := seedBlockchainDir(ctx, filepath.Join(dir, "blockchains"), catalog); err != nil {
		return err
	}
	return seedUserFile(ctx, filepath.Join(dir, "users.yaml"), users)
}

func seedPolicyFile(ctx context.Context, path string, catalog kpgcat.Interface) error {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return xe.Wrap(err)
	}

	var sp seedPolicy
	if err := yaml.Unmarshal(content, &sp); err != nil {
		return xe.Wrap(err)
	}

	policy := domain.PolicyInfo{
		StorageClass:          sp.StorageClass,
		SnapshotClass:         sp.SnapshotClass,
		DomainName:            sp.DomainName,
		CertificateName:       sp.CertificateName,
		ServiceAccount:        sp.ServiceAccount,
		InformerResync:        sp.InformerResync,
		EnableMonitor:         sp.EnableMonitor,
		RequireAuthentication: sp.RequireAuthentication,
		Envoy: domain.EnvoyConfig{
			Image:                 sp.Envoy.Image,
			Command:               sp.Envoy.Command,
			Timeout:               sp.Envoy.Timeout,
			AccessAuthorization:   sp.Envoy.AccessAuthorization,
			AuthServerURL:         sp.Envoy.AuthServerURL,
			AuthServerPort:        sp.Envoy.AuthServerPort,
			AuthenticationEnabled: sp.Envoy.AuthenticationEnabled,
		},
		Request: domain.ResourceDefaults{
			Cpu:     sp.Request.Cpu,
			Memory:  sp.Request.Memory,
			Storage: sp.Request.Storage,
		},
	}
	return catalog.SetPolicy(ctx, policy)
}

func seedBlockchainDir(ctx context.Context, dir string, catalog kpgcat.Interface) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return xe.Wrap(err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return xe.Wrap(err)
		}
		var sb seedBlockchain
		if err := yaml.Unmarshal(content, &sb); err != nil {
			return xe.Wrap(err)
		}

		if _, err := catalog.CreateBlockchain(ctx, sb.Name, sb.Networks); err != nil {
			if !errors.Is(err, domerr.ErrExists) {
				return err
			}
		}

		for _, sn := range sb.Nodes {
			node := domain.NodeInfo{
				Name:       sn.Name,
				Type:       sn.Type,
				Endpoints:  sn.Endpoints,
				Ports:      sn.Ports,
				Settings:   sn.Settings,
				Properties: sn.Properties,
			}
			for _, img := range sn.Images {
				node.Images = append(node.Images, domain.ImageInfo{
					Name: img.Name, Version: img.Version, Url: img.Url,
				})
			}
			if err := catalog.UpsertNode(ctx, sb.Name, node); err != nil {
				return err
			}
		}

		for name, body := range sb.Templates {
			if err := catalog.SetTemplate(ctx, sb.Name, name, body); err != nil {
				return err
			}
		}
	}

	return nil
}

func seedUserFile(ctx context.Context, path string, users kpguser.Interface) error {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return xe.Wrap(err)
	}

	var su seedUsers
	if err := yaml.Unmarshal(content, &su); err != nil {
		return xe.Wrap(err)
	}

	for _, u := range su.Users {
		role, err := domain.AsRole(u.Role)
		if err != nil {
			return err
		}
		if _, err := users.Register(ctx, kpguser.UserSpec{
			Email: u.Email, Name: u.Name, Role: role, Provider: u.Provider,
		}); err != nil {
			if errors.Is(err, domerr.ErrExists) {
				continue
			}
			return err
		}
	}
	return nil
}
