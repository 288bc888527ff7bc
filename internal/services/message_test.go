package services

import (
	"testing"
	"time"

	"turftrack/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msg(id, listingID, senderID, receiverID uint64, senderName string, isRead bool, age time.Duration) entities.Message {
	return entities.Message{
		ID:         id,
		ListingID:  listingID,
		SenderID:   senderID,
		SenderName: senderName,
		ReceiverID: receiverID,
		Content:    "hello",
		IsRead:     isRead,
		CreatedAt:  time.Now().Add(-age),
	}
}

// User 1 is the requester throughout. Input is newest first, matching the
// repository's ordering.
func TestAggregateConversations_CollapsesThreadToOneGroup(t *testing.T) {
	messages := []entities.Message{
		msg(3, 10, 2, 1, "Sam Seller", false, time.Minute),
		msg(2, 10, 1, 2, "Bob Buyer", false, time.Hour),
		msg(1, 10, 2, 1, "Sam Seller", true, 2*time.Hour),
	}

	groups := AggregateConversations(1, messages)

	require.Len(t, groups, 1)
	assert.Equal(t, uint64(10), groups[0].ListingID)
	assert.Equal(t, uint64(2), groups[0].OtherUserID)
	assert.Equal(t, uint64(3), groups[0].LastMessage.ID, "first message seen is the most recent")
	assert.Equal(t, "Sam Seller", groups[0].OtherUserName)
	assert.Equal(t, 1, groups[0].UnreadCount)
}

func TestAggregateConversations_SplitsByListingAndCounterparty(t *testing.T) {
	messages := []entities.Message{
		msg(4, 20, 3, 1, "Third Party", false, time.Minute),
		msg(3, 10, 3, 1, "Third Party", false, 2*time.Minute),
		msg(2, 10, 2, 1, "Sam Seller", false, 3*time.Minute),
		msg(1, 10, 1, 2, "Bob Buyer", false, 4*time.Minute),
	}

	groups := AggregateConversations(1, messages)

	require.Len(t, groups, 3)
	// Same listing, different counterparties stay separate; same counterparty
	// on a different listing stays separate too.
	assert.Equal(t, uint64(20), groups[0].ListingID)
	assert.Equal(t, uint64(3), groups[0].OtherUserID)
	assert.Equal(t, uint64(10), groups[1].ListingID)
	assert.Equal(t, uint64(3), groups[1].OtherUserID)
	assert.Equal(t, uint64(10), groups[2].ListingID)
	assert.Equal(t, uint64(2), groups[2].OtherUserID)
}

func TestAggregateConversations_UnreadCountsOnlyIncomingUnread(t *testing.T) {
	messages := []entities.Message{
		msg(5, 10, 2, 1, "Sam Seller", false, time.Minute),
		msg(4, 10, 2, 1, "Sam Seller", false, 2*time.Minute),
		msg(3, 10, 2, 1, "Sam Seller", true, 3*time.Minute),
		msg(2, 10, 1, 2, "Bob Buyer", false, 4*time.Minute),
	}

	groups := AggregateConversations(1, messages)

	require.Len(t, groups, 1)
	// Own outgoing unread message (id 2) and the already-read one (id 3) do
	// not count.
	assert.Equal(t, 2, groups[0].UnreadCount)
}

func TestAggregateConversations_NameComesFromCounterpartyMessages(t *testing.T) {
	// The requester spoke last; the counterparty's name must still come from
	// the counterparty's own message.
	messages := []entities.Message{
		msg(2, 10, 1, 2, "Bob Buyer", false, time.Minute),
		msg(1, 10, 2, 1, "Sam Seller", true, time.Hour),
	}

	groups := AggregateConversations(1, messages)

	require.Len(t, groups, 1)
	assert.Equal(t, uint64(2), groups[0].LastMessage.ID)
	assert.Equal(t, "Sam Seller", groups[0].OtherUserName)
}

func TestAggregateConversations_OneSidedThreadHasEmptyName(t *testing.T) {
	messages := []entities.Message{
		msg(1, 10, 1, 2, "Bob Buyer", false, time.Minute),
	}

	groups := AggregateConversations(1, messages)

	require.Len(t, groups, 1)
	assert.Equal(t, uint64(2), groups[0].OtherUserID)
	assert.Empty(t, groups[0].OtherUserName)
	assert.Zero(t, groups[0].UnreadCount)
}

func TestAggregateConversations_Empty(t *testing.T) {
	assert.Empty(t, AggregateConversations(1, nil))
}
