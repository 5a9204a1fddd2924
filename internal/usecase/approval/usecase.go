package approval

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainApproval "usermgmt-service/internal/domain/approval"
	"usermgmt-service/internal/domain/status"
	"usermgmt-service/internal/domain/uow"
	domainUser "usermgmt-service/internal/domain/user"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Usecase struct {
	approvalRepo domainApproval.Repository
	uow          uow.UnitOfWork
	events       Publisher
}

// NewUsecase: reads go through the repo, writes through the UoW.
func NewUsecase(approvals domainApproval.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{approvalRepo: approvals, uow: tx}
}

// WithPublisher enables events for committed creates and reviews.
func (u *Usecase) WithPublisher(p Publisher) *Usecase {
	u.events = p
	return u
}

// publish never fails the caller; the write already committed.
func (u *Usecase) publish(ctx context.Context, key string, v any) {
	if u.events == nil {
		return
	}
	if err := u.events.PublishJSON(ctx, key, v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("publish event failed")
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainApproval.ErrNotFound
	}
	return err
}

// loadUsers resolves every id or fails with user.ErrNotFound naming the first gap.
func loadUsers(ctx context.Context, users domainUser.Repository, ids []uint64) ([]domainUser.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	have := make(map[uint64]struct{}, len(found))
	for _, u := range found {
		have[u.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := have[id]; !ok {
			return nil, fmt.Errorf("%w: id %d", domainUser.ErrNotFound, id)
		}
	}
	return found, nil
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domainApproval.View, error) {
	a, err := domainApproval.NewApproval(in.ApprovalType, in.Status, in.StatusByAdmin, in.StatusBySuAdmin)
	if err != nil {
		return nil, err
	}

	var out domainApproval.View
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		users, err := loadUsers(ctx, r.Users, in.UserIDs)
		if err != nil {
			return err
		}
		a.Users = users
		if err := r.Approvals.Create(ctx, a); err != nil {
			return err
		}
		fresh, err := r.Approvals.GetByID(ctx, a.ID)
		if err != nil {
			return err
		}
		out = fresh.Serialize()
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Uint64("approval_id", out.ID).Int("users", len(out.Users)).Msg("approval created")
	u.publish(ctx, EventCreated, createdEvent{
		ApprovalID:   out.ID,
		ApprovalType: out.ApprovalType,
		Users:        len(out.Users),
		At:           time.Now().UTC(),
	})
	return &out, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*domainApproval.View, error) {
	a, err := u.approvalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	v := a.Serialize()
	return &v, nil
}

// List filters on the primary status when st is non-nil.
func (u *Usecase) List(ctx context.Context, st *status.Status) ([]domainApproval.View, error) {
	list, err := u.approvalRepo.List(ctx, st)
	if err != nil {
		return nil, err
	}
	out := make([]domainApproval.View, 0, len(list))
	for _, a := range list {
		out = append(out, a.Serialize())
	}
	return out, nil
}

func (u *Usecase) AddUsers(ctx context.Context, id uint64, userIDs []uint64) (*domainApproval.View, error) {
	var out domainApproval.View
	err := u.uow.WithinApprovalTx(ctx, id, func(r uow.Repos, a *domainApproval.Approval) error {
		users, err := loadUsers(ctx, r.Users, userIDs)
		if err != nil {
			return err
		}
		if err := r.Approvals.AttachUsers(ctx, a, users...); err != nil {
			return err
		}
		fresh, err := r.Approvals.GetByID(ctx, id)
		if err != nil {
			return err
		}
		out = fresh.Serialize()
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (u *Usecase) RemoveUser(ctx context.Context, id, userID uint64) (*domainApproval.View, error) {
	var out domainApproval.View
	err := u.uow.WithinApprovalTx(ctx, id, func(r uow.Repos, a *domainApproval.Approval) error {
		if err := r.Approvals.DetachUser(ctx, a, &domainUser.User{ID: userID}); err != nil {
			return err
		}
		fresh, err := r.Approvals.GetByID(ctx, id)
		if err != nil {
			return err
		}
		out = fresh.Serialize()
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

// Review writes one tier's decision under a row lock. Reviewer tiers never
// feed into the primary status.
func (u *Usecase) Review(ctx context.Context, id uint64, in ReviewInput) (*domainApproval.View, error) {
	tier, err := domainApproval.ParseTier(in.Tier)
	if err != nil {
		return nil, err
	}

	var out domainApproval.View
	err = u.uow.WithinApprovalTx(ctx, id, func(r uow.Repos, a *domainApproval.Approval) error {
		if err := a.SetTierStatus(tier, in.Status); err != nil {
			return err
		}
		if err := r.Approvals.Save(ctx, a); err != nil {
			return err
		}
		out = a.Serialize()
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}
	log.Info().
		Uint64("approval_id", id).
		Str("tier", string(tier)).
		Str("status", in.Status.String()).
		Msg("approval reviewed")
	u.publish(ctx, EventReviewed, reviewedEvent{
		ApprovalID: id,
		Tier:       string(tier),
		Status:     in.Status,
		At:         time.Now().UTC(),
	})
	return &out, nil
}

func (u *Usecase) ApprovedUsers(ctx context.Context, id uint64) (domainApproval.Membership, error) {
	a, err := u.approvalRepo.GetByID(ctx, id)
	if err != nil {
		return domainApproval.Membership{}, notFound(err)
	}
	return a.ApprovedUsers(), nil
}

func (u *Usecase) PendingUsers(ctx context.Context, id uint64) (domainApproval.Membership, error) {
	a, err := u.approvalRepo.GetByID(ctx, id)
	if err != nil {
		return domainApproval.Membership{}, notFound(err)
	}
	return a.PendingUsers(), nil
}
