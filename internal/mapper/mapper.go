// Package mapper is the pure translation layer between persisted records and
// transfer records. Nothing here touches storage; join-derived sub-records
// are passed in already decoded and assigned onto the DTO explicitly.
package mapper

import (
	"github.com/orchestrahub/orchestra-backend/internal/dto"
	"github.com/orchestrahub/orchestra-backend/internal/repos"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

const (
	roleLabelConductor = "Conductor"
	roleLabelPlayer    = "Player"
	roleLabelUnknown   = "Unknown"
)

// UserRoleLabel renders the stored role code for display.
func UserRoleLabel(code int) string {
	switch code {
	case types.RoleConductor:
		return roleLabelConductor
	case types.RolePlayer:
		return roleLabelPlayer
	default:
		return roleLabelUnknown
	}
}

// UserRoleCode recovers the stored code from a display label; unrecognized
// labels map to -1.
func UserRoleCode(label string) int {
	switch label {
	case roleLabelConductor:
		return types.RoleConductor
	case roleLabelPlayer:
		return types.RolePlayer
	default:
		return -1
	}
}

func UserToDto(u *types.User) dto.UserDto {
	return dto.UserDto{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      UserRoleLabel(u.Role),
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
	}
}

func ConductorToDto(c *types.Conductor) dto.ConductorDto {
	return dto.ConductorDto{
		ID:     c.ID,
		UserID: c.UserID,
		Name:   c.Name,
	}
}

// OrchestraToDto flattens an orchestra row and its (possibly absent)
// conductor row into one transfer record.
func OrchestraToDto(o *types.Orchestra, conductor *types.Conductor) dto.OrchestraDto {
	d := dto.OrchestraDto{
		ID:          o.ID,
		Name:        o.Name,
		Image:       o.Image,
		Date:        o.Date,
		Description: o.Description,
	}
	if conductor != nil {
		cd := ConductorToDto(conductor)
		d.Conductor = &cd
	}
	return d
}

func PlayerToDto(p *types.Player) dto.PlayerDto {
	return dto.PlayerDto{
		ID:           p.ID,
		UserID:       p.UserID,
		Name:         p.Name,
		SectionID:    p.SectionID,
		OrchestraID:  p.OrchestraID,
		InstrumentID: p.InstrumentID,
		ConcertID:    p.ConcertID,
		Score:        p.Score,
	}
}

func SectionToDto(s *types.Section) dto.SectionDto {
	return dto.SectionDto{ID: s.ID, Name: s.Name}
}

func InstrumentToDto(i *types.Instrument) dto.InstrumentDto {
	return dto.InstrumentDto{ID: i.ID, Name: i.Name, SectionID: i.SectionID}
}

func ConcertToDto(c *types.Concert) dto.ConcertDto {
	return dto.ConcertDto{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		PerformanceDate: c.PerformanceDate,
		Image:           c.Image,
		OrchestraID:     c.OrchestraID,
		Players:         c.Players,
	}
}

// EnrollmentDetailToDto carries over the names the list query's join
// resolved alongside the raw request fields.
func EnrollmentDetailToDto(d *repos.EnrollmentDetail) dto.EnrollmentDto {
	return dto.EnrollmentDto{
		PlayerID:       d.PlayerID,
		OrchestraID:    d.OrchestraID,
		SectionID:      d.SectionID,
		InstrumentID:   d.InstrumentID,
		Experience:     d.Experience,
		IsApproved:     d.IsApproved,
		PlayerName:     d.PlayerName,
		SectionName:    d.SectionName,
		InstrumentName: d.InstrumentName,
	}
}

func EnrollmentToDto(e *types.Enrollment) dto.EnrollmentDto {
	return dto.EnrollmentDto{
		PlayerID:     e.PlayerID,
		OrchestraID:  e.OrchestraID,
		SectionID:    e.SectionID,
		InstrumentID: e.InstrumentID,
		Experience:   e.Experience,
		IsApproved:   e.IsApproved,
	}
}
