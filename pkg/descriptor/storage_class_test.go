// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package descriptor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/objectplane/bucketc/pkg/descriptor"
)

func TestParseStorageClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    descriptor.StorageClass
		wantErr bool
	}{
		{name: "standard", input: "STANDARD", want: descriptor.StorageClassStandard},
		{name: "standard ia", input: "STANDARD_IA", want: descriptor.StorageClassInfrequentAccess},
		{name: "intelligent tiering", input: "INTELLIGENT_TIERING", want: descriptor.StorageClassIntelligentTiering},
		{name: "glacier", input: "GLACIER", want: descriptor.StorageClassGlacier},
		{name: "deep archive", input: "DEEP_ARCHIVE", want: descriptor.StorageClassDeepArchive},
		{name: "lowercase is not recognized", input: "glacier", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown class", input: "REDUCED_REDUNDANCY", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := descriptor.ParseStorageClass(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, descriptor.ErrUnknownStorageClass)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.input, got.String())
		})
	}
}

func TestStorageClass_TransitionAllowed(t *testing.T) {
	t.Parallel()

	require.False(t, descriptor.StorageClassStandard.TransitionAllowed(),
		"STANDARD is a creation-time class only")
	require.False(t, descriptor.StorageClassUnknown.TransitionAllowed())

	for _, sc := range []descriptor.StorageClass{
		descriptor.StorageClassInfrequentAccess,
		descriptor.StorageClassIntelligentTiering,
		descriptor.StorageClassGlacier,
		descriptor.StorageClassDeepArchive,
	} {
		require.True(t, sc.TransitionAllowed(), "%s should accept transitions", sc)
	}
}
