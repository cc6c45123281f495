package member

import (
	"context"
	"errors"
	"strings"
	"time"

	"fundraising-backend/internal/domain/audit"
	"fundraising-backend/internal/domain/uow"
	"fundraising-backend/internal/domain/user"
	"fundraising-backend/pkg/id"
	"fundraising-backend/pkg/phone"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

type Usecase struct {
	users     user.Repository
	uow       uow.UnitOfWork
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewUsecase(users user.Repository, tx uow.UnitOfWork, jwtSecret string, tokenTTL time.Duration) *Usecase {
	return &Usecase{users: users, uow: tx, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

func memberDTO(u *user.User) MemberDTO {
	return MemberDTO{
		UserID:    u.UserID,
		Name:      u.Name,
		Phone:     u.Phone,
		Email:     u.Email,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

func validPasscode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Login checks the phone/passcode pair and issues a signed token
// carrying the user's identity and role.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*LoginDTO, error) {
	p := phone.NormalizeUK(in.Phone)
	usr, err := u.users.GetByPhone(ctx, p)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}
	if !usr.Active {
		return nil, user.ErrInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasscodeHash), []byte(in.Passcode)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	exp := time.Now().UTC().Add(u.tokenTTL)
	claims := jwt.MapClaims{
		"sub":  usr.UserID,
		"uid":  usr.ID,
		"name": usr.Name,
		"role": string(usr.Role),
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &LoginDTO{Token: tok, ExpiresAt: exp, User: memberDTO(usr)}, nil
}

func (u *Usecase) Create(ctx context.Context, in CreateInput, createdBy uint64) (*MemberDTO, error) {
	name := strings.TrimSpace(in.Name)
	p := phone.NormalizeUK(in.Phone)
	if name == "" || !phone.IsUKMobile(p) {
		return nil, ErrInvalidInput
	}
	role := user.Role(in.Role)
	if role != user.RoleAdmin && role != user.RoleRegistrar {
		return nil, ErrInvalidInput
	}
	if !validPasscode(in.Passcode) {
		return nil, ErrInvalidPasscode
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Passcode), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usr := &user.User{
		UserID:       id.NewID32(),
		Name:         name,
		Phone:        p,
		Email:        strings.TrimSpace(in.Email),
		Role:         role,
		Active:       true,
		PasscodeHash: string(hash),
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Users.Create(ctx, usr); err != nil {
			return err
		}
		return r.Audit.Record(ctx, audit.Entry{
			UserID:     createdBy,
			EntityType: "user",
			EntityID:   usr.UserID,
			Action:     audit.ActionCreatePending,
			After:      memberDTO(usr),
			Source:     "admin",
		})
	})
	if err != nil {
		return nil, err
	}
	dto := memberDTO(usr)
	return &dto, nil
}

func (u *Usecase) Update(ctx context.Context, userID string, in UpdateInput, updatedBy uint64) (*MemberDTO, error) {
	var dto MemberDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		before := memberDTO(usr)

		if name := strings.TrimSpace(in.Name); name != "" {
			usr.Name = name
		}
		if email := strings.TrimSpace(in.Email); email != "" {
			usr.Email = email
		}
		if in.Passcode != "" {
			if !validPasscode(in.Passcode) {
				return ErrInvalidPasscode
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(in.Passcode), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			usr.PasscodeHash = string(hash)
		}
		if in.Active != nil {
			usr.Active = *in.Active
		}
		if err := r.Users.Save(ctx, usr); err != nil {
			return err
		}
		dto = memberDTO(usr)

		return r.Audit.Record(ctx, audit.Entry{
			UserID:     updatedBy,
			EntityType: "user",
			EntityID:   usr.UserID,
			Action:     audit.ActionUpdate,
			Before:     before,
			After:      dto,
			Source:     "admin",
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

func (u *Usecase) List(ctx context.Context, role string, activeOnly bool) ([]MemberDTO, error) {
	rows, err := u.users.List(ctx, user.Role(role), activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]MemberDTO, 0, len(rows))
	for i := range rows {
		out = append(out, memberDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, userID string) (*MemberDTO, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := memberDTO(usr)
	return &dto, nil
}
