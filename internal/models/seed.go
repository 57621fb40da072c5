package models

// SeedNotifications returns a fresh copy of the default notification list
func SeedNotifications() []Notification {
	return []Notification{
		{
			ID:         1,
			ActorName:  "Mark Webber",
			AvatarRef:  "/images/avatar-mark-webber.webp",
			Action:     "reacted to your recent post",
			Target:     StringPtr("My first tournament today!"),
			TargetKind: KindPtr(TargetPost),
			Unread:     true,
			OccurredAt: "1m ago",
		},
		{
			ID:         2,
			ActorName:  "Angela Gray",
			AvatarRef:  "/images/avatar-angela-gray.webp",
			Action:     "followed you",
			Unread:     true,
			OccurredAt: "5m ago",
		},
		{
			ID:         3,
			ActorName:  "Jacob Thompson",
			AvatarRef:  "/images/avatar-jacob-thompson.webp",
			Action:     "has joined your group",
			Target:     StringPtr("Chess Club"),
			TargetKind: KindPtr(TargetGroup),
			Unread:     true,
			OccurredAt: "1 day ago",
		},
		{
			ID:         4,
			ActorName:  "Rizky Hasanuddin",
			AvatarRef:  "/images/avatar-rizky-hasanuddin.webp",
			Action:     "sent you a private message",
			Unread:     false,
			OccurredAt: "5 days ago",
			MessageBody: StringPtr("Hello, thanks for setting up the Chess Club. I've been a member for a few weeks now " +
				"and I'm already having lots of fun and improving my game."),
		},
		{
			ID:              5,
			ActorName:       "Kimberly Smith",
			AvatarRef:       "/images/avatar-kimberly-smith.webp",
			Action:          "commented on your picture",
			Unread:          false,
			OccurredAt:      "1 week ago",
			ImagePreviewRef: StringPtr("/images/image-chess.webp"),
		},
		{
			ID:         6,
			ActorName:  "Nathan Peterson",
			AvatarRef:  "/images/avatar-nathan-peterson.webp",
			Action:     "reacted to your recent post",
			Target:     StringPtr("5 end-game strategies to increase your win rate"),
			TargetKind: KindPtr(TargetPost),
			Unread:     false,
			OccurredAt: "2 weeks ago",
		},
		{
			ID:         7,
			ActorName:  "Anna Kim",
			AvatarRef:  "/images/avatar-anna-kim.webp",
			Action:     "left the group",
			Target:     StringPtr("Chess Club"),
			TargetKind: KindPtr(TargetGroup),
			Unread:     false,
			OccurredAt: "2 weeks ago",
		},
	}
}
