package kafka

import (
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	brokers := []string{"localhost:9092"}

	assert.ErrorIs(t, Config{Topic: "aegis.scan.completed"}.validate(), ErrNoBrokers)
	assert.ErrorIs(t, Config{Brokers: brokers}.validate(), ErrNoTopic)
	assert.NoError(t, Config{Brokers: brokers, Topic: "aegis.scan.completed"}.validate())

	assert.ErrorIs(t, ConsumerConfig{GroupID: "aegis-report"}.validate(), ErrNoBrokers)
	assert.ErrorIs(t, ConsumerConfig{Brokers: brokers}.validate(), ErrNoGroup)
	assert.NoError(t, ConsumerConfig{Brokers: brokers, GroupID: "aegis-report"}.validate())
}

func TestSaramaConfig(t *testing.T) {
	pc := Config{Brokers: []string{"b:9092"}, Topic: "t"}.saramaConfig()
	assert.Equal(t, DefaultClientID, pc.ClientID)
	assert.True(t, pc.Producer.Return.Successes)
	assert.Equal(t, sarama.WaitForLocal, pc.Producer.RequiredAcks)
	assert.NoError(t, pc.Validate())

	cc := ConsumerConfig{Brokers: []string{"b:9092"}, GroupID: "g", ClientID: "worker-1"}.saramaConfig()
	assert.Equal(t, "worker-1", cc.ClientID)
	assert.Equal(t, sarama.OffsetNewest, cc.Consumer.Offsets.Initial)
	assert.NoError(t, cc.Validate())

	cc = ConsumerConfig{Brokers: []string{"b:9092"}, GroupID: "g", FromOldest: true}.saramaConfig()
	assert.Equal(t, sarama.OffsetOldest, cc.Consumer.Offsets.Initial)
}
