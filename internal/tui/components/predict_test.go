package components

import (
	"errors"
	"testing"

	"github.com/Veraticus/securebank-console/internal/model"
	tuitest "github.com/Veraticus/securebank-console/internal/tui/testing"
	"github.com/Veraticus/securebank-console/internal/tui/themes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictPanel_TypingWritesThrough(t *testing.T) {
	ctl := newController(&stubBackend{})
	panel := NewPredictPanel(ctl, themes.Default)

	panel = typeInto(panel, "2019-01-01 00:00:18")
	panel, _ = panel.Update(tuitest.KeyDown())
	panel = typeInto(panel, "4111")
	panel, _ = panel.Update(tuitest.KeyBackspace())

	state := ctl.State()
	assert.Equal(t, "2019-01-01 00:00:18", state.Transaction.TransDateTransTime)
	assert.Equal(t, "411", state.Transaction.CCNum)
	assert.Equal(t, model.FieldCCNum, panel.form.Focused())
}

func TestPredictPanel_FocusWraps(t *testing.T) {
	panel := NewPredictPanel(newController(&stubBackend{}), themes.Default)

	panel, _ = panel.Update(tuitest.KeyUp())
	assert.Equal(t, model.FieldMerchLong, panel.form.Focused())

	panel, _ = panel.Update(tuitest.KeyDown())
	assert.Equal(t, model.FieldTransDateTransTime, panel.form.Focused())
}

func TestPredictPanel_Verdicts(t *testing.T) {
	tests := []struct {
		name       string
		prediction model.Prediction
		err        error
		want       string
		absent     []string
	}{
		{name: "fraud", prediction: model.PredictionFraud, want: "FRAUD", absent: []string{"Confirmed"}},
		{name: "legitimate", prediction: "legit", want: "Confirmed: legit", absent: []string{"FRAUD"}},
		{name: "failure", err: errors.New("connection refused"), want: "connection refused", absent: []string{"FRAUD", "Confirmed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &stubBackend{prediction: tt.prediction, err: tt.err}
			ctl := newController(b)
			panel := NewPredictPanel(ctl, themes.Default)

			before := tuitest.PlainView(panel.View())
			assert.NotContains(t, before, "FRAUD")
			assert.NotContains(t, before, "Confirmed")

			_, cmd := panel.Update(tuitest.KeyEnter())
			settle(t, ctl, cmd)

			view := tuitest.PlainView(panel.View())
			assert.Contains(t, view, tt.want)
			for _, s := range tt.absent {
				assert.NotContains(t, view, s)
			}
		})
	}
}

func TestPredictPanel_SubmitsFormVerbatim(t *testing.T) {
	b := &stubBackend{prediction: "legit"}
	ctl := newController(b)
	panel := NewPredictPanel(ctl, themes.Default)

	for i := 0; i < 5; i++ {
		panel, _ = panel.Update(tuitest.KeyDown())
	}
	panel = typeInto(panel, " 12.50 ")

	_, cmd := panel.Update(tuitest.KeyEnter())
	settle(t, ctl, cmd)

	require.Len(t, b.predicts, 1)
	assert.Equal(t, model.TransactionInput{Amount: " 12.50 "}, b.predicts[0])
}
