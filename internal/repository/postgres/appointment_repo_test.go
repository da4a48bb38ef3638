package postgres_test

import (
	"context"
	"testing"

	"clinic-api/internal/repository/postgres"
	"clinic-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentRepository_DeleteByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewAppointmentRepository(db)
	ctx := context.Background()

	appointment := testutil.NewAppointmentBuilder().Build(t, db)

	rows, err := repo.DeleteByID(ctx, appointment.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	// deleting again matches nothing
	rows, err = repo.DeleteByID(ctx, appointment.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, rows)
}

func TestAppointmentRepository_ListByParticipant(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewAppointmentRepository(db)
	ctx := context.Background()

	patient, _ := testutil.NewUserBuilder().Build(t, db)
	doctor, _ := testutil.NewUserBuilder().Build(t, db)

	first := testutil.NewAppointmentBuilder().
		WithPatient(patient.ID).
		WithDoctor(doctor.ID).
		Build(t, db)
	second := testutil.NewAppointmentBuilder().
		WithPatient(patient.ID).
		WithDoctor(doctor.ID).
		Build(t, db)
	// appointment for an unrelated pair
	testutil.NewAppointmentBuilder().Build(t, db)

	byPatient, err := repo.ListByPatient(ctx, patient.ID)
	require.NoError(t, err)
	require.Len(t, byPatient, 2)
	assert.Equal(t, first.ID, byPatient[0].ID)
	assert.Equal(t, second.ID, byPatient[1].ID)

	byDoctor, err := repo.ListByDoctor(ctx, doctor.ID)
	require.NoError(t, err)
	assert.Len(t, byDoctor, 2)

	// the patient never appears on the doctor side
	asDoctor, err := repo.ListByDoctor(ctx, patient.ID)
	require.NoError(t, err)
	assert.Empty(t, asDoctor)
}
