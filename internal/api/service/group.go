package service

import (
	"context"
	"errors"
	"strings"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/idx"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type GroupService struct {
	Store store.Store
}

// GroupWithPermissions is the group read model: the group plus the flat
// names of its permissions.
type GroupWithPermissions struct {
	Group       domain.Group
	Permissions []string
}

// Create stores a new group, optionally with an initial permission set.
func (s *GroupService) Create(ctx context.Context, name string, permissions []string) (GroupWithPermissions, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return GroupWithPermissions{}, NewFieldError("name", "Name cannot be empty")
	}

	g := domain.Group{
		ID:   idx.New().String(),
		Name: name,
	}
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Groups().CreateGroup(ctx, g); err != nil {
			return err
		}
		return s.linkPermissions(ctx, tx, g.ID, permissions)
	})
	if err != nil {
		return GroupWithPermissions{}, err
	}

	slogx.FromContext(ctx).Info("group created", "group_id", g.ID, "name", name)
	return s.Get(ctx, g.ID)
}

// Get loads a group with its permission names.
func (s *GroupService) Get(ctx context.Context, id string) (GroupWithPermissions, error) {
	g, err := s.Store.Groups().GetGroupByID(ctx, id)
	if err != nil {
		return GroupWithPermissions{}, err
	}
	perms, err := s.Store.Groups().ListGroupPermissionNames(ctx, id)
	if err != nil {
		return GroupWithPermissions{}, err
	}
	return GroupWithPermissions{Group: g, Permissions: perms}, nil
}

// List returns all groups with their permission names.
func (s *GroupService) List(ctx context.Context) ([]GroupWithPermissions, error) {
	groups, err := s.Store.Groups().ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]GroupWithPermissions, 0, len(groups))
	for _, g := range groups {
		perms, err := s.Store.Groups().ListGroupPermissionNames(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, GroupWithPermissions{Group: g, Permissions: perms})
	}
	return out, nil
}

type UpdateGroupInput struct {
	Name        *string  // nil leaves the name untouched
	Permissions []string // nil leaves permissions untouched; empty clears
}

// Update renames the group and/or replaces its permission set. Replacement
// runs clear-then-add inside one transaction so readers never observe an
// empty permission window. Unknown permission names are skipped, not
// rejected.
func (s *GroupService) Update(ctx context.Context, id string, in UpdateGroupInput) (GroupWithPermissions, error) {
	if _, err := s.Store.Groups().GetGroupByID(ctx, id); err != nil {
		return GroupWithPermissions{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return GroupWithPermissions{}, NewFieldError("name", "Name cannot be empty")
		}
		if err := s.Store.Groups().UpdateGroupName(ctx, id, name); err != nil {
			return GroupWithPermissions{}, err
		}
	}

	if in.Permissions != nil {
		err := s.Store.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Groups().ClearGroupPermissions(ctx, id); err != nil {
				return err
			}
			return s.linkPermissions(ctx, tx, id, in.Permissions)
		})
		if err != nil {
			return GroupWithPermissions{}, err
		}
	}

	return s.Get(ctx, id)
}

// Delete removes a group and its permission links.
func (s *GroupService) Delete(ctx context.Context, id string) error {
	if _, err := s.Store.Groups().GetGroupByID(ctx, id); err != nil {
		return err
	}
	return s.Store.Groups().DeleteGroup(ctx, id)
}

// ListPermissions returns the permission catalog.
func (s *GroupService) ListPermissions(ctx context.Context) ([]domain.Permission, error) {
	return s.Store.Permissions().ListPermissions(ctx)
}

// linkPermissions resolves names and links the matches. Names that resolve
// to no permission are skipped.
func (s *GroupService) linkPermissions(ctx context.Context, tx store.Tx, groupID string, names []string) error {
	log := slogx.FromContext(ctx)
	for _, name := range names {
		p, err := tx.Permissions().GetPermissionByName(ctx, name)
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("skipping unknown permission", "group_id", groupID, "permission", name)
			continue
		} else if err != nil {
			return err
		}
		if err := tx.Groups().AddGroupPermission(ctx, groupID, p.ID); err != nil {
			return err
		}
	}
	return nil
}
